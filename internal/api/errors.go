package api

import "fmt"

// RemoteError is an application-level failure: the backend answered, but the
// response discriminator was not "success". Reason carries the
// server-supplied message. Transport failures (network error, unparseable
// body) are returned as plain wrapped errors, never as RemoteError.
type RemoteError struct {
	Endpoint string
	Reason   string
}

func (e *RemoteError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: request failed", e.Endpoint)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Reason)
}
