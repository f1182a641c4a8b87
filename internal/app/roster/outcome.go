package roster

// Outcome distinguishes a confirmed-absent lookup from an upstream failure.
// The original behavior collapsed both into "not found"; keeping them separate
// lets callers preserve that behavior while logs stay honest.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeAbsent
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeAbsent:
		return "absent"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
