package model

// FetchStatus represents the refresh state machine of the session
type FetchStatus string

const (
	// FetchStatusIdle means no fetch is in flight
	FetchStatusIdle FetchStatus = "Idle"

	// FetchStatusFetching means a fetch was dispatched and its result is not drained yet
	FetchStatusFetching FetchStatus = "Fetching"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true while a fetch is in flight
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusFetching
}

// Severity classifies transient messages shown to the user
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// String returns the string representation of Severity
func (s Severity) String() string {
	return string(s)
}
