package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cementgpt/cementchat/internal/domain"
)

// Sink bridges the controller to the bubbletea program. Controller
// operations run on their own goroutines, so every callback is forwarded as
// a program send, which bubbletea serializes into the update loop.
//
// The Sink is created before the program (the model needs the controller,
// the controller needs the sink); Attach wires the program in before any
// operation runs.
type Sink struct {
	mu sync.RWMutex
	p  *tea.Program
}

// NewSink returns an unattached sink. Calls before Attach are dropped.
func NewSink() *Sink {
	return &Sink{}
}

// Attach binds the sink to a running program.
func (s *Sink) Attach(p *tea.Program) {
	s.mu.Lock()
	s.p = p
	s.mu.Unlock()
}

func (s *Sink) send(msg tea.Msg) {
	s.mu.RLock()
	p := s.p
	s.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

func (s *Sink) AppendMessage(msg domain.Message) {
	s.send(appendMessageMsg{msg: msg})
}

func (s *Sink) ResetTranscript() {
	s.send(resetTranscriptMsg{})
}

func (s *Sink) SetStatus(status domain.SystemStatus, detail string) {
	s.send(statusChangedMsg{status: status, detail: detail})
}

func (s *Sink) Notify(n domain.Notification) {
	s.send(notificationMsg{n: n})
}

func (s *Sink) ShowTyping() {
	s.send(typingMsg{visible: true})
}

func (s *Sink) HideTyping() {
	s.send(typingMsg{visible: false})
}

func (s *Sink) SetLoading(loading bool) {
	s.send(loadingMsg{visible: loading})
}

func (s *Sink) ClearInput() {
	s.send(clearInputMsg{})
}

func (s *Sink) SetCorpora(summary string) {
	s.send(corporaUpdatedMsg{summary: summary})
}

func (s *Sink) ClearCorpusForm() {
	s.send(clearCorpusFormMsg{})
}

func (s *Sink) ClearDocumentForm() {
	s.send(clearDocumentFormMsg{})
}

// Confirm blocks the calling controller goroutine until the user answers
// the dialog. An unattached sink declines, which keeps the no-confirmation
// path side-effect free.
func (s *Sink) Confirm(question string) bool {
	s.mu.RLock()
	p := s.p
	s.mu.RUnlock()
	if p == nil {
		return false
	}

	reply := make(chan bool, 1)
	p.Send(confirmRequestMsg{question: question, reply: reply})
	return <-reply
}
