package types

// Mode selects the extraction strategy.
type Mode string

const (
	// ModeSubstrings scans the raw text for bracketed literals near the
	// variable name and parses them without executing anything.
	ModeSubstrings Mode = "substrings"
	// ModeEvaluate runs the source as a program and serializes the
	// variable's value at the end of execution.
	ModeEvaluate Mode = "evaluate"
)

// Valid reports whether m is one of the recognized extraction modes.
func (m Mode) Valid() bool {
	return m == ModeSubstrings || m == ModeEvaluate
}

// Candidate is a bracket-delimited region of the source considered for
// literal parsing during one scan iteration.
type Candidate struct {
	Filename string
	Start    int // byte offset of the opening bracket
	End      int // byte offset just past the closing bracket
	Text     string
}
