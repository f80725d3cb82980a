package domain

// SystemStatus is the backend readiness state as seen by the client.
// Chat input is accepted only while the status is StatusOnline.
type SystemStatus int

const (
	// StatusChecking is the initial state before the first poll resolves.
	StatusChecking SystemStatus = iota
	// StatusOnline means the backend reported both readiness flags true.
	StatusOnline
	// StatusOffline means the backend reported not-ready or the poll failed.
	StatusOffline
)

// String returns the display name for the status.
func (s SystemStatus) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusOnline:
		return "online"
	case StatusOffline:
		return "offline"
	}
	return "unknown"
}
