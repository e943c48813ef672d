package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWeakWarning is for style findings; correctness is not at stake.
	SevWeakWarning Severity = iota
	// SevWarning is for suspicious constructs.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWeakWarning:
		return "WEAK_WARNING"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
