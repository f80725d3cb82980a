package tui

import (
	"strings"

	"github.com/cementgpt/cementchat/internal/chat"
)

// renderContent renders the constrained markdown subset with terminal
// styles. Double newlines separate paragraphs, single newlines break lines,
// mirroring the structural form produced by chat.FormatHTML.
func renderContent(content string, styles Styles) string {
	var out strings.Builder
	paragraphs := strings.Split(content, "\n\n")
	for pi, para := range paragraphs {
		if pi > 0 {
			out.WriteString("\n\n")
		}
		lines := strings.Split(para, "\n")
		for li, line := range lines {
			if li > 0 {
				out.WriteString("\n")
			}
			for _, span := range chat.Spans(line) {
				switch span.Kind {
				case chat.SpanBold:
					out.WriteString(styles.Bold.Render(span.Text))
				case chat.SpanItalic:
					out.WriteString(styles.Italic.Render(span.Text))
				case chat.SpanCode:
					out.WriteString(styles.Code.Render(span.Text))
				default:
					out.WriteString(span.Text)
				}
			}
		}
	}
	return out.String()
}
