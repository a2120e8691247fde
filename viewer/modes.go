package viewer

// Mode represents the exit-confirmation state.
type Mode int

const (
	ModeNormal      Mode = iota // Showing the table
	ModeConfirmExit             // Waiting for a second quit key
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeConfirmExit:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}
