package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cementgpt/cementchat/internal/domain"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(nil, "Welcome to CementGPT", NewStyles(DarkTheme()), zap.NewNop())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWelcomeMessageIsFirstEntry(t *testing.T) {
	m := newTestModel(t)
	require.Len(t, m.messages, 1)
	assert.Equal(t, "Welcome to CementGPT", m.messages[0].Content)
	assert.Equal(t, domain.RoleAgent, m.messages[0].Role)
}

func TestResetTranscriptKeepsWelcome(t *testing.T) {
	m := newTestModel(t)
	m, _ = apply(t, m, appendMessageMsg{msg: domain.NewUserMessage("hi")})
	m, _ = apply(t, m, appendMessageMsg{msg: domain.NewAgentMessage("hello")})
	require.Len(t, m.messages, 3)

	m, _ = apply(t, m, resetTranscriptMsg{})
	require.Len(t, m.messages, 1)
	assert.Equal(t, "Welcome to CementGPT", m.messages[0].Content)
}

func TestStatusGatesInputFocus(t *testing.T) {
	m := newTestModel(t)

	m, _ = apply(t, m, statusChangedMsg{status: domain.StatusOnline, detail: "System ready"})
	assert.Equal(t, domain.StatusOnline, m.status)
	assert.True(t, m.input.Focused())

	m, _ = apply(t, m, statusChangedMsg{status: domain.StatusOffline, detail: "down"})
	assert.Equal(t, domain.StatusOffline, m.status)
	assert.False(t, m.input.Focused())
}

func TestToastReplacementIgnoresStaleTimer(t *testing.T) {
	m := newTestModel(t)

	m, cmd := apply(t, m, notificationMsg{n: domain.Notification{Kind: domain.NotifyInfo, Message: "first"}})
	require.NotNil(t, cmd, "a toast schedules its own expiry")
	firstSeq := m.toastSeq

	m, _ = apply(t, m, notificationMsg{n: domain.Notification{Kind: domain.NotifyError, Message: "second"}})
	require.NotNil(t, m.toast)
	assert.Equal(t, "second", m.toast.Message)

	// The first toast's timer fires after it was replaced.
	m, _ = apply(t, m, toastExpiredMsg{seq: firstSeq})
	require.NotNil(t, m.toast, "stale timer must not dismiss the replacement")
	assert.Equal(t, "second", m.toast.Message)

	m, _ = apply(t, m, toastExpiredMsg{seq: m.toastSeq})
	assert.Nil(t, m.toast)
}

func TestConfirmDialogYes(t *testing.T) {
	m := newTestModel(t)

	reply := make(chan bool, 1)
	m, _ = apply(t, m, confirmRequestMsg{question: "Clear the conversation?", reply: reply})
	assert.Equal(t, modeConfirm, m.mode)

	m, _ = apply(t, m, keyMsg("y"))
	assert.Equal(t, modeChat, m.mode)
	assert.Nil(t, m.confirm)

	select {
	case answer := <-reply:
		assert.True(t, answer)
	case <-time.After(time.Second):
		t.Fatal("no reply delivered")
	}
}

func TestConfirmDialogDeclined(t *testing.T) {
	m := newTestModel(t)

	reply := make(chan bool, 1)
	m, _ = apply(t, m, confirmRequestMsg{question: "Clear the conversation?", reply: reply})
	m, _ = apply(t, m, keyMsg("esc"))

	assert.Equal(t, modeChat, m.mode)
	select {
	case answer := <-reply:
		assert.False(t, answer)
	case <-time.After(time.Second):
		t.Fatal("no reply delivered")
	}
}

func TestConfirmIgnoresOtherKeys(t *testing.T) {
	m := newTestModel(t)

	reply := make(chan bool, 1)
	m, _ = apply(t, m, confirmRequestMsg{question: "Sure?", reply: reply})
	m, _ = apply(t, m, keyMsg("x"))

	assert.Equal(t, modeConfirm, m.mode, "unrelated keys keep the dialog open")
	assert.Empty(t, reply)
}

func TestCorpusModalFocusCycle(t *testing.T) {
	m := newTestModel(t)
	m.mode = modeCorpus
	m.setCorpusFocus()
	assert.True(t, m.corpus.name.Focused())

	m, _ = apply(t, m, keyMsg("tab"))
	assert.Equal(t, 1, m.corpus.focus)
	assert.True(t, m.corpus.corpus.Focused())
	assert.False(t, m.corpus.name.Focused())

	m, _ = apply(t, m, keyMsg("tab"))
	m, _ = apply(t, m, keyMsg("tab"))
	assert.Equal(t, 0, m.corpus.focus, "focus wraps around")
}

func TestCorpusModalEscReturnsToChat(t *testing.T) {
	m := newTestModel(t)
	m.mode = modeCorpus

	m, _ = apply(t, m, keyMsg("esc"))
	assert.Equal(t, modeChat, m.mode)
}

func TestTypingIndicatorToggles(t *testing.T) {
	m := newTestModel(t)

	m, _ = apply(t, m, typingMsg{visible: true})
	assert.True(t, m.typing)

	m, _ = apply(t, m, typingMsg{visible: false})
	assert.False(t, m.typing)
}

func TestClearInputResetsField(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("half-typed question")

	m, _ = apply(t, m, clearInputMsg{})
	assert.Empty(t, m.input.Value())
}

func TestCorpusFormClears(t *testing.T) {
	m := newTestModel(t)
	m.corpus.name.SetValue("specs")
	m.corpus.corpus.SetValue("specs")
	m.corpus.docURL.SetValue("https://example.com/doc.pdf")

	m, _ = apply(t, m, clearCorpusFormMsg{})
	assert.Empty(t, m.corpus.name.Value())
	assert.Equal(t, "specs", m.corpus.corpus.Value())

	m, _ = apply(t, m, clearDocumentFormMsg{})
	assert.Empty(t, m.corpus.corpus.Value())
	assert.Empty(t, m.corpus.docURL.Value())
}

func TestThemeByName(t *testing.T) {
	assert.False(t, ThemeByName("light").IsDark)
	assert.True(t, ThemeByName("dark").IsDark)
	assert.True(t, ThemeByName("").IsDark)
}
