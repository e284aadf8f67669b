package delivery

// State represents the lifecycle state of a Record, derived from its
// LockedAt/CompletedAt/FailedAt timestamps rather than stored directly.
//
// The state machine is:
//
//	Ready     -> Leased
//	Leased    -> Completed
//	Leased    -> Ready      (visibility timeout, attempts <= max_attempts)
//	Leased    -> Failed     (explicit fail, or timeout with attempts > max_attempts)
//
// Completed and Failed are terminal: no transition leaves them.
type State uint8

const (
	// Ready indicates the message is eligible for receive.
	Ready State = iota

	// Leased indicates the message is held by a consumer under an
	// active visibility timeout.
	Leased

	// Completed indicates successful processing. Terminal.
	Completed

	// Failed indicates explicit failure or exhaustion of the attempt
	// budget. Terminal.
	Failed
)

// String returns the canonical string representation of the state.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Leased:
		return "leased"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
