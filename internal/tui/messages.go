package tui

import "github.com/cementgpt/cementchat/internal/domain"

// Messages delivered to the update loop. Most originate in the Sink, which
// translates controller callbacks into program sends; the rest are internal
// ticks and command results.

type appendMessageMsg struct {
	msg domain.Message
}

type resetTranscriptMsg struct{}

type statusChangedMsg struct {
	status domain.SystemStatus
	detail string
}

type notificationMsg struct {
	n domain.Notification
}

// toastExpiredMsg dismisses the toast identified by seq. A newer toast
// bumps the sequence, so a stale timer cannot dismiss its replacement.
type toastExpiredMsg struct {
	seq int
}

type typingMsg struct {
	visible bool
}

type loadingMsg struct {
	visible bool
}

type clearInputMsg struct{}

type corporaUpdatedMsg struct {
	summary string
}

type clearCorpusFormMsg struct{}

type clearDocumentFormMsg struct{}

// confirmRequestMsg asks the user a yes/no question. The controller
// goroutine blocks on reply until the user answers.
type confirmRequestMsg struct {
	question string
	reply    chan bool
}

// opDoneMsg reports completion of a controller operation run as a command.
// Failures were already surfaced through the sink; the error is kept for
// logging only.
type opDoneMsg struct {
	op  string
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}
