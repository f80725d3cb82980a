package chat

import (
	"fmt"
	"io"

	"github.com/cementgpt/cementchat/internal/domain"
)

// RenderSink is the presentation surface the controller drives. Splitting
// rendering out keeps the state machine testable without a live terminal.
// Implementations must tolerate calls from the controller's goroutine.
type RenderSink interface {
	// AppendMessage adds one turn to the rendered transcript.
	AppendMessage(msg domain.Message)
	// ResetTranscript drops every rendered message except the fixed
	// welcome message.
	ResetTranscript()
	// SetStatus updates the readiness indicator. Input affordances are
	// enabled iff status is StatusOnline.
	SetStatus(status domain.SystemStatus, detail string)
	// Notify shows a transient notification, replacing any visible one.
	Notify(n domain.Notification)
	// ShowTyping displays the typing placeholder; HideTyping removes it.
	ShowTyping()
	HideTyping()
	// SetLoading toggles the corpus admin loading indicator.
	SetLoading(loading bool)
	// ClearInput empties the chat input field.
	ClearInput()
	// SetCorpora renders the corpus summary blob, or an inline error
	// placeholder when refresh failed.
	SetCorpora(summary string)
	// ClearCorpusForm empties the corpus name field after a successful
	// create; ClearDocumentForm empties both add-document fields.
	ClearCorpusForm()
	ClearDocumentForm()
	// Confirm presents a yes/no gate and reports the user's choice.
	Confirm(question string) bool
}

// WriterSink renders to a plain writer. It backs the one-shot CLI
// subcommands, where there is no transcript to maintain and confirmation
// was already given on the command line.
type WriterSink struct {
	W io.Writer
	// AssumeYes answers every confirmation gate; subcommands set it from
	// a --yes flag.
	AssumeYes bool
}

func (s *WriterSink) AppendMessage(msg domain.Message) {
	label := "agent"
	if msg.Role == domain.RoleUser {
		label = "you"
	}
	fmt.Fprintf(s.W, "[%s] %s\n", label, msg.Content)
}

func (s *WriterSink) ResetTranscript() {}

func (s *WriterSink) SetStatus(status domain.SystemStatus, detail string) {
	if detail != "" {
		fmt.Fprintf(s.W, "status: %s (%s)\n", status, detail)
		return
	}
	fmt.Fprintf(s.W, "status: %s\n", status)
}

func (s *WriterSink) Notify(n domain.Notification) {
	fmt.Fprintf(s.W, "%s: %s\n", n.Kind, n.Message)
}

func (s *WriterSink) ShowTyping()             {}
func (s *WriterSink) HideTyping()             {}
func (s *WriterSink) SetLoading(loading bool) {}
func (s *WriterSink) ClearInput()             {}

func (s *WriterSink) SetCorpora(summary string) {
	fmt.Fprintln(s.W, summary)
}

func (s *WriterSink) ClearCorpusForm()   {}
func (s *WriterSink) ClearDocumentForm() {}

func (s *WriterSink) Confirm(question string) bool {
	return s.AssumeYes
}
