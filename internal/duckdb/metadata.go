package duckdb

import (
	"fmt"
	"os"
	"time"
)

// FileFingerprint identifies the input alignment a run was computed from.
type FileFingerprint struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// StatFile fingerprints an on-disk file.
func StatFile(path string) (FileFingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileFingerprint{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return FileFingerprint{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime().UTC(),
	}, nil
}

// Matches reports whether path still has the recorded size and
// modification time.
func (f FileFingerprint) Matches(path string) bool {
	cur, err := StatFile(path)
	if err != nil {
		return false
	}
	return cur.Size == f.Size && cur.ModTime.Equal(f.ModTime)
}
