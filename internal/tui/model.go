package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cementgpt/cementchat/internal/chat"
	"github.com/cementgpt/cementchat/internal/domain"
)

type viewMode int

const (
	modeChat viewMode = iota
	modeCorpus
	modeConfirm
)

const inputHeight = 3

// confirmState is a pending yes/no dialog. The controller goroutine is
// blocked on reply until the user answers.
type confirmState struct {
	question string
	reply    chan bool
}

// corpusForm holds the corpus administration modal state.
type corpusForm struct {
	name    textinput.Model
	corpus  textinput.Model
	docURL  textinput.Model
	focus   int
	summary string
	loading bool
}

// Model is the bubbletea model for the chat interface.
type Model struct {
	ctrl   *chat.Client
	logger *zap.Logger
	styles Styles

	input    textarea.Model
	vp       viewport.Model
	spin     spinner.Model
	messages []domain.Message
	typing   bool

	status       domain.SystemStatus
	statusDetail string

	toast    *domain.Notification
	toastSeq int

	mode     viewMode
	prevMode viewMode
	confirm  *confirmState
	corpus   corpusForm

	width  int
	height int
	ready  bool
}

// New builds the model. The welcome message is the fixed first transcript
// entry; clearing the conversation reduces the transcript back to it.
func New(ctrl *chat.Client, welcome string, styles Styles, logger *zap.Logger) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about cement production, quality control, plant operations..."
	ta.ShowLineNumbers = false
	ta.SetHeight(inputHeight - 2)
	ta.CharLimit = 4000
	ta.KeyMap.InsertNewline.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.AgentLabel

	form := corpusForm{
		name:    textinput.New(),
		corpus:  textinput.New(),
		docURL:  textinput.New(),
		summary: "Loading corpus information...",
	}
	form.name.Placeholder = "New corpus name"
	form.corpus.Placeholder = "Corpus name"
	form.docURL.Placeholder = "Document URL (Drive or GCS)"
	form.name.Focus()

	return Model{
		ctrl:     ctrl,
		logger:   logger,
		styles:   styles,
		input:    ta,
		spin:     sp,
		messages: []domain.Message{domain.NewAgentMessage(welcome)},
		status:   domain.StatusChecking,
		corpus:   form,
	}
}

// Init starts the spinner and runs the startup sequence: one readiness poll
// followed by history hydration.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spin.Tick, m.startupCmd())
}

func (m Model) startupCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctx := context.Background()
		if err := ctrl.CheckStatus(ctx); err != nil {
			return opDoneMsg{op: "startup", err: err}
		}
		return opDoneMsg{op: "startup", err: ctrl.LoadHistory(ctx)}
	}
}

func (m Model) sendCmd(text string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: "send", err: ctrl.SendMessage(context.Background(), text)}
	}
}

func (m Model) clearCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: "clear", err: ctrl.ClearConversation(context.Background())}
	}
}

func (m Model) refreshCorporaCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: "corpus-list", err: ctrl.RefreshCorpora(context.Background())}
	}
}

func (m Model) createCorpusCmd(name string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: "corpus-create", err: ctrl.CreateCorpus(context.Background(), name)}
	}
}

func (m Model) addDocumentCmd(corpus, url string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: "corpus-add-document", err: ctrl.AddDocument(context.Background(), corpus, url)}
	}
}

func (m Model) checkStatusCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return opDoneMsg{op: "status", err: ctrl.CheckStatus(context.Background())}
	}
}

func (m Model) exportCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		path := filepath.Join(".", chat.ExportFilename(time.Now()))
		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()
		if err := ctrl.ExportTranscript(f); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		chromeHeight := inputHeight + 4 // header, status line, toast line, help
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - chromeHeight
		}
		m.input.SetWidth(msg.Width - 4)
		m.corpus.name.Width = msg.Width / 2
		m.corpus.corpus.Width = msg.Width / 2
		m.corpus.docURL.Width = msg.Width / 2
		m.renderTranscript()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if m.typing {
			m.renderTranscript()
		}
		return m, cmd

	case appendMessageMsg:
		m.messages = append(m.messages, msg.msg)
		m.renderTranscript()
		return m, nil

	case resetTranscriptMsg:
		m.messages = m.messages[:1]
		m.renderTranscript()
		return m, nil

	case statusChangedMsg:
		m.status = msg.status
		m.statusDetail = msg.detail
		if msg.status == domain.StatusOnline {
			m.input.Focus()
		} else {
			m.input.Blur()
		}
		return m, nil

	case notificationMsg:
		return m.showToast(msg.n)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case typingMsg:
		m.typing = msg.visible
		m.renderTranscript()
		return m, nil

	case loadingMsg:
		m.corpus.loading = msg.visible
		return m, nil

	case clearInputMsg:
		m.input.Reset()
		return m, nil

	case corporaUpdatedMsg:
		m.corpus.summary = msg.summary
		return m, nil

	case clearCorpusFormMsg:
		m.corpus.name.Reset()
		return m, nil

	case clearDocumentFormMsg:
		m.corpus.corpus.Reset()
		m.corpus.docURL.Reset()
		return m, nil

	case confirmRequestMsg:
		m.prevMode = m.mode
		m.mode = modeConfirm
		m.confirm = &confirmState{question: msg.question, reply: msg.reply}
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.logger.Debug("operation settled with error",
				zap.String("op", msg.op),
				zap.Error(msg.err),
			)
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			return m.showToast(domain.Notification{
				Kind:    domain.NotifyError,
				Message: "Failed to export transcript.",
			})
		}
		return m.showToast(domain.Notification{
			Kind:    domain.NotifySuccess,
			Message: "Transcript saved to " + msg.path,
		})
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeCorpus:
		return m.handleCorpusKey(msg)
	}
	return m.handleChatKey(msg)
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := m.input.Value()
		if m.status != domain.StatusOnline {
			return m, nil
		}
		return m, m.sendCmd(text)

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+k":
		m.mode = modeCorpus
		m.corpus.focus = 0
		m.setCorpusFocus()
		return m, m.refreshCorporaCmd()
	case "ctrl+l":
		return m, m.clearCmd()
	case "ctrl+e":
		return m, m.exportCmd()
	case "ctrl+r":
		return m, m.checkStatusCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	answer := false
	switch msg.String() {
	case "y", "Y", "enter":
		answer = true
	case "n", "N", "esc":
		answer = false
	default:
		return m, nil
	}

	if m.confirm != nil {
		m.confirm.reply <- answer
	}
	m.confirm = nil
	m.mode = m.prevMode
	return m, nil
}

func (m Model) handleCorpusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeChat
		return m, nil

	case tea.KeyTab:
		m.corpus.focus = (m.corpus.focus + 1) % 3
		m.setCorpusFocus()
		return m, nil

	case tea.KeyShiftTab:
		m.corpus.focus = (m.corpus.focus + 2) % 3
		m.setCorpusFocus()
		return m, nil

	case tea.KeyEnter:
		if m.corpus.loading {
			return m, nil
		}
		if m.corpus.focus == 0 {
			return m, m.createCorpusCmd(m.corpus.name.Value())
		}
		return m, m.addDocumentCmd(m.corpus.corpus.Value(), m.corpus.docURL.Value())
	}

	if msg.String() == "ctrl+r" {
		return m, m.refreshCorporaCmd()
	}

	var cmd tea.Cmd
	switch m.corpus.focus {
	case 0:
		m.corpus.name, cmd = m.corpus.name.Update(msg)
	case 1:
		m.corpus.corpus, cmd = m.corpus.corpus.Update(msg)
	default:
		m.corpus.docURL, cmd = m.corpus.docURL.Update(msg)
	}
	return m, cmd
}

func (m *Model) setCorpusFocus() {
	inputs := []*textinput.Model{&m.corpus.name, &m.corpus.corpus, &m.corpus.docURL}
	for i, ti := range inputs {
		if i == m.corpus.focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}

func (m Model) showToast(n domain.Notification) (tea.Model, tea.Cmd) {
	m.toast = &n
	m.toastSeq++
	seq := m.toastSeq
	return m, tea.Tick(domain.NotificationTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// updateFocused forwards unhandled messages to the focused component.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
