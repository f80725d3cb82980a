// Package tui provides the interactive terminal front-end. It implements
// the chat.RenderSink contract on top of bubbletea, so all conversation
// logic stays in the controller.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cementgpt/cementchat/internal/domain"
)

// Theme holds the color scheme for the UI.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
	IsDark  bool
}

// DarkTheme returns the default dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#7aa2f7"),
		Accent:  lipgloss.Color("#9ece6a"),
		Muted:   lipgloss.Color("#565f89"),
		Border:  lipgloss.Color("#3b4261"),
		Error:   lipgloss.Color("#f7768e"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#e0af68"),
		Info:    lipgloss.Color("#7dcfff"),
		IsDark:  true,
	}
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#2e5aac"),
		Accent:  lipgloss.Color("#33691e"),
		Muted:   lipgloss.Color("#8a8f98"),
		Border:  lipgloss.Color("#c5cad3"),
		Error:   lipgloss.Color("#c62828"),
		Success: lipgloss.Color("#2e7d32"),
		Warning: lipgloss.Color("#b26a00"),
		Info:    lipgloss.Color("#0277bd"),
		IsDark:  false,
	}
}

// ThemeByName maps a config value to a theme, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds the pre-built lipgloss styles used by the views.
type Styles struct {
	Theme Theme

	Header     lipgloss.Style
	StatusLine lipgloss.Style
	UserLabel  lipgloss.Style
	AgentLabel lipgloss.Style
	ErrorText  lipgloss.Style
	Timestamp  lipgloss.Style
	Muted      lipgloss.Style

	Bold   lipgloss.Style
	Italic lipgloss.Style
	Code   lipgloss.Style

	InputBox lipgloss.Style
	Modal    lipgloss.Style
	Help     lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header:     lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Padding(0, 1),
		StatusLine: lipgloss.NewStyle().Padding(0, 1),
		UserLabel:  lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		AgentLabel: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		ErrorText:  lipgloss.NewStyle().Foreground(theme.Error),
		Timestamp:  lipgloss.NewStyle().Foreground(theme.Muted),
		Muted:      lipgloss.NewStyle().Foreground(theme.Muted),

		Bold:   lipgloss.NewStyle().Bold(true),
		Italic: lipgloss.NewStyle().Italic(true),
		Code:   lipgloss.NewStyle().Foreground(theme.Warning),

		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),
		Help: lipgloss.NewStyle().Foreground(theme.Muted).Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().Bold(true).Foreground(theme.Success).Padding(0, 1),
		ToastError:   lipgloss.NewStyle().Bold(true).Foreground(theme.Error).Padding(0, 1),
		ToastWarning: lipgloss.NewStyle().Bold(true).Foreground(theme.Warning).Padding(0, 1),
		ToastInfo:    lipgloss.NewStyle().Bold(true).Foreground(theme.Info).Padding(0, 1),
	}
}

// ToastStyle returns the style for a notification kind.
func (s Styles) ToastStyle(kind domain.NotificationKind) lipgloss.Style {
	switch kind {
	case domain.NotifySuccess:
		return s.ToastSuccess
	case domain.NotifyError:
		return s.ToastError
	case domain.NotifyWarning:
		return s.ToastWarning
	}
	return s.ToastInfo
}

// StatusStyle returns the style for a readiness state.
func (s Styles) StatusStyle(status domain.SystemStatus) lipgloss.Style {
	switch status {
	case domain.StatusOnline:
		return lipgloss.NewStyle().Foreground(s.Theme.Success)
	case domain.StatusOffline:
		return lipgloss.NewStyle().Foreground(s.Theme.Error)
	}
	return lipgloss.NewStyle().Foreground(s.Theme.Warning)
}
