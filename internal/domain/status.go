package domain

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

// Claimable reports whether the scanner may hand a tracked file to the parser. Failed files stay
// failed until the row is reset by hand.
func (s Status) Claimable() bool {
	return s == StatusPending
}
