package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage seqmagick2 configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.seqmagick2.yaml.",
		Example: `  seqmagick2 config                     # show all config
  seqmagick2 config set output paml      # default output format
  seqmagick2 config set codontable 2     # default genetic code
  seqmagick2 config get output           # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd.OutOrStdout(), args[0])
		},
	}
}

// configuredSettings returns the values read from the config file. Flag
// defaults are left out.
func configuredSettings() map[string]any {
	settings := make(map[string]any)
	for _, key := range viper.AllKeys() {
		if viper.InConfig(key) {
			settings[key] = viper.Get(key)
		}
	}
	return settings
}

func runConfigShow(w io.Writer) error {
	settings := configuredSettings()
	if len(settings) == 0 {
		fmt.Fprintln(w, "# No configuration set. Config file: ~/"+configName+".yaml")
		return nil
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(w, string(out))
	return nil
}

func runConfigSet(w io.Writer, key, value string) error {
	settings := configuredSettings()

	// Parse boolean-like and numeric values
	switch value {
	case "true", "yes", "on":
		settings[key] = true
	case "false", "no", "off":
		settings[key] = false
	default:
		if n, err := strconv.Atoi(value); err == nil {
			settings[key] = n
		} else {
			settings[key] = value
		}
	}

	// Ensure config file exists
	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		var err error
		if cfgFile, err = defaultConfigPath(); err != nil {
			return err
		}
	}

	fresh := viper.New()
	fresh.SetConfigType("yaml")
	for k, v := range settings {
		fresh.Set(k, v)
	}
	if err := fresh.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(w, "Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

func runConfigGet(w io.Writer, key string) error {
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Fprintln(w, val)
	return nil
}
