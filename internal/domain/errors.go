package domain

import "errors"

var (
	// ErrEmptyInput indicates input that is empty after trimming.
	ErrEmptyInput = errors.New("empty input")
	// ErrBusy indicates a send was attempted while another is in flight.
	ErrBusy = errors.New("request already in flight")
	// ErrOffline indicates a send was attempted while the backend is not
	// ready.
	ErrOffline = errors.New("system is not online")
	// ErrNotConfirmed indicates the user declined a confirmation gate.
	ErrNotConfirmed = errors.New("not confirmed")
)
