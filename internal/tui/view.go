package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cementgpt/cementchat/internal/domain"
)

const statusDot = "●"

// View renders the current mode.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case modeCorpus:
		return m.corpusView()
	case modeConfirm:
		return m.confirmView()
	}
	return m.chatView()
}

func (m Model) chatView() string {
	header := m.styles.Header.Render("CementGPT")
	status := m.statusView()
	toast := m.toastView()
	input := m.styles.InputBox.Render(m.input.View())
	help := m.styles.Help.Render("enter send • ctrl+k corpora • ctrl+l clear • ctrl+e export • ctrl+r recheck • ctrl+c quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, header, status),
		m.vp.View(),
		toast,
		input,
		help,
	)
}

func (m Model) statusView() string {
	style := m.styles.StatusStyle(m.status)
	label := style.Render(statusDot + " " + m.status.String())
	if m.statusDetail == "" {
		return m.styles.StatusLine.Render(label)
	}
	return m.styles.StatusLine.Render(label + " " + m.styles.Muted.Render(m.statusDetail))
}

func (m Model) toastView() string {
	if m.toast == nil {
		return ""
	}
	return m.styles.ToastStyle(m.toast.Kind).Render(m.toast.Message)
}

func (m Model) confirmView() string {
	question := m.styles.Bold.Render(m.confirm.question)
	hint := m.styles.Muted.Render("[y] yes    [n] no")
	box := m.styles.Modal.Render(question + "\n\n" + hint)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) corpusView() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Corpus Management"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Bold.Render("Available corpora"))
	b.WriteString("\n")
	if m.corpus.loading {
		b.WriteString(m.spin.View() + " Working...")
	} else {
		b.WriteString(m.corpus.summary)
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.Bold.Render("Create corpus"))
	b.WriteString("\n")
	b.WriteString(m.corpus.name.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Bold.Render("Add document"))
	b.WriteString("\n")
	b.WriteString(m.corpus.corpus.View())
	b.WriteString("\n")
	b.WriteString(m.corpus.docURL.View())
	b.WriteString("\n\n")

	b.WriteString(m.toastView())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab next field • enter submit • ctrl+r refresh • esc back"))

	return m.styles.Modal.Width(m.width - 4).Render(b.String())
}

// renderTranscript rebuilds the viewport content from the message list and
// scrolls to the latest entry.
func (m *Model) renderTranscript() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderMessage(msg))
	}
	if m.typing {
		b.WriteString("\n\n")
		b.WriteString(m.styles.AgentLabel.Render("CementGPT"))
		b.WriteString("\n")
		b.WriteString(m.spin.View() + m.styles.Muted.Render(" thinking..."))
	}

	m.vp.SetContent(b.String())
	m.vp.GotoBottom()
}

func (m Model) renderMessage(msg domain.Message) string {
	label := m.styles.AgentLabel.Render("CementGPT")
	if msg.Role == domain.RoleUser {
		label = m.styles.UserLabel.Render("You")
	}

	stamp := ""
	if !msg.Timestamp.IsZero() {
		stamp = " " + m.styles.Timestamp.Render(msg.Timestamp.Format("15:04"))
	}

	body := renderContent(msg.Content, m.styles)
	if msg.IsError {
		body = m.styles.ErrorText.Render(msg.Content)
	}

	return label + stamp + "\n" + body
}
