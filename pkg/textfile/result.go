package textfile

// Outcome is the result of an edit that did not fail
type Outcome int

const (
	// Unchanged means the candidate was identical to the original and the
	// target was left untouched
	Unchanged Outcome = iota
	// Changed means the candidate differed from the original
	Changed
)

func (o Outcome) String() string {
	switch o {
	case Changed:
		return "changed"
	default:
		return "unchanged"
	}
}

// Result describes a completed edit
type Result struct {
	Outcome Outcome
	Path    string

	// Diff is a unified diff from the original to the candidate, set when
	// Outcome is Changed
	Diff string

	// Committed is false when the edit was only previewed (dry run) or
	// nothing changed
	Committed bool
}
