package gencode

// Amino-acid symbol to IUPAC-aware codon expression, one table per code.
// 'B' holds the code's start codons; '.' matches any base.
var definitions = map[Code]map[byte]string{
	Standard: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)GG)",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "(((U|T)A(A|G|R))|((T|U)GA))",
		'_': "(((U|T)A(A|G|R))|((T|U)GA))",
		'X': "...",
		'B': "((U|T|C|Y|A)(U|T)G)",
	},
	VertebrateMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)(A|G|R))",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "(CG.)",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)G(A|G|R))",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "(((U|T)A(A|G|R))|(AG(A|G|R)))",
		'_': "(((U|T)A(A|G|R))|(AG(A|G|R)))",
		'X': "...",
		'B': "((A(U|T).)|G(U|T)G)",
	},
	YeastMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y))",
		'K': "(AA(A|G|R))",
		'L': "((U|T)(U|T)(A|G|R))",
		'M': "(A(U|T)(A|G|R))",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "((AC.)|(C(U|T).))",
		'V': "(G(U|T).)",
		'W': "((U|T)G(A|G|R))",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "((U|T)A(A|G|R))",
		'_': "((U|T)A(A|G|R))",
		'X': "...",
		'B': "(A(U|T)(A|G|R))",
	},
	MoldMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)G(A|G|R))",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "((U|T)A(A|G|R))",
		'_': "((U|T)A(A|G|R))",
		'X': "...",
		'B': "((A(U|T).)|((U|T)(U|T)(A|G|R))|(C(U|T)G)|(G(U|T)G))",
	},
	InvertebrateMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)(A|G|R))",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "(CG.)",
		'S': "(((U|T)C.)|(AG.))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)G(A|G|R))",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "((U|T)A(A|G|R))",
		'_': "((U|T)A(A|G|R))",
		'X': "...",
		'B': "((A(U|T).)|((U|T|A|G|R)(U|T)G))",
	},
	CiliateNuclear: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "((CA(A|G|R))|((U|T)A(A|G|R)))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)GG)",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "((T|U)GA)",
		'_': "((T|U)GA)",
		'X': "...",
		'B': "(A(U|T)G)",
	},
	EchinodermMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AAG)",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y|A))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "(CG.)",
		'S': "(((U|T)C.)|(AG.))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)G(A|G|R))",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "((U|T)A(A|G|R))",
		'_': "((U|T)A(A|G|R))",
		'X': "...",
		'B': "((A|G|R)(U|T)G)",
	},
	EuplotidNuclear: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)GG)",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "(((U|T)A(A|G|R))|((T|U)GA))",
		'_': "(((U|T)A(A|G|R))|((T|U)GA))",
		'X': "...",
		'B': "(A(U|T)G)",
	},
	BacterialPlastid: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)GG)",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "(((U|T)A(A|G|R))|((T|U)GA))",
		'_': "(((U|T)A(A|G|R))|((T|U)GA))",
		'X': "...",
		'B': "((A(U|T)G)|(.(U|T)G))",
	},
	AlternativeYeastNuclear: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T)(U|T|C|Y|A))|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y))|(C(U|T)G))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)GG)",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "(((U|T)A(A|G|R))|((T|U)GA))",
		'_': "(((U|T)A(A|G|R))|((T|U)GA))",
		'X': "...",
		'B': "((A|C)(U|T)G)",
	},
	AscidianMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "((GG.)|(AG(A|G|R)))",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)(A|G|R))",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "(CG.)",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)G(A|G|R))",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "((U|T)A(A|G|R))",
		'_': "((U|T)A(A|G|R))",
		'X': "...",
		'B': "((T|U|A|G|R)(U|T)G)",
	},
	AlternativeFlatwormMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AAG)",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y|A))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "(CG.)",
		'S': "(((U|T)C.)|(AG.))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)G(G|A|R))",
		'Y': "((U|T)A(U|T|C|Y|A))",
		'*': "((U|T)AG)",
		'_': "((U|T)AG)",
		'X': "...",
		'B': "(A(U|T)G)",
	},
	BlepharismaNuclear: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "((CA(A|G|R))|((U|T)AG))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)GG)",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "(((U|T)AA)|((T|U)GA))",
		'_': "(((U|T)AA)|((T|U)GA))",
		'X': "...",
		'B': "(A(U|T)G)",
	},
	ChlorophyceanMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R))|((U|T)AG))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)GG)",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "(((U|T)AA)|((T|U)GA))",
		'_': "(((U|T)AA)|((T|U)GA))",
		'X': "...",
		'B': "(A(U|T)G)",
	},
	TrematodeMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y))",
		'K': "(AAG)",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R)))",
		'M': "(A(U|T)(A|G|R))",
		'N': "(AA(U|T|C|Y|A))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "(CG.)",
		'S': "(((U|T)C.)|(AG.))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)G(A|G|R))",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "((U|T)A(A|G|R))",
		'_': "((U|T)A(A|G|R))",
		'X': "...",
		'B': "((A|G|R)(U|T)G)",
	},
	ScenedesmusMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)(A|G|R))|((T|U)AG))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C(U|T|C|Y|G))|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)GG)",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "((U|T)(C|A|G|R)A)",
		'_': "((U|T)(C|A|G|R)A)",
		'X': "...",
		'B': "(A(U|T)G)",
	},
	ThraustochytriumMitochondrial: {
		'A': "(GC.)",
		'C': "((U|T)G(U|T|C|Y))",
		'D': "(GA(U|T|C|Y))",
		'E': "(GA(A|G|R))",
		'F': "((U|T)(U|T)(U|T|C|Y))",
		'G': "(GG.)",
		'H': "(CA(U|T|C|Y))",
		'I': "(A(U|T)(U|T|C|Y|A))",
		'K': "(AA(A|G|R))",
		'L': "((C(U|T).)|((U|T)(U|T)G))",
		'M': "(A(U|T)G)",
		'N': "(AA(U|T|C|Y))",
		'P': "(CC.)",
		'Q': "(CA(A|G|R))",
		'R': "((CG.)|(AG(A|G|R)))",
		'S': "(((U|T)C.)|(AG(U|T|C|Y)))",
		'T': "(AC.)",
		'V': "(G(U|T).)",
		'W': "((U|T)GG)",
		'Y': "((U|T)A(U|T|C|Y))",
		'*': "(((U|T)A(A|G|R))|((T|U)GA)|((T|U)(T|U)A))",
		'_': "(((U|T)A(A|G|R))|((T|U)GA)|((T|U)(T|U)A))",
		'X': "...",
		'B': "(((A|G|R)(U|T)G)|(A(U|T)(U|T)))",
	},
}
