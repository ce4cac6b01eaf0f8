package logstore

// Status is the derived outcome of a single automation run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsFailure reports whether the run counts against the failed total.
// An unreadable log is a failure, not a gap in the numbers.
func (s Status) IsFailure() bool {
	return s == StatusFailed || s == StatusError
}
