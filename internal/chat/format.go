package chat

import (
	"regexp"
	"strings"
)

// Inline markup patterns for the constrained markdown subset. Bold is
// matched before italic so "**x**" is not consumed as two italic stars.
var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
	codeRe   = regexp.MustCompile("`(.*?)`")
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// FormatHTML transforms the constrained markdown subset into structural
// markup: **bold**, *italic*, `code`, double newline to paragraph break,
// single newline to line break. The output is wrapped in a paragraph only
// if any break was produced. Raw text is HTML-escaped before substitution,
// so backend-sourced markup is rendered inert.
func FormatHTML(content string) string {
	formatted := htmlEscaper.Replace(content)
	formatted = boldRe.ReplaceAllString(formatted, "<strong>$1</strong>")
	formatted = italicRe.ReplaceAllString(formatted, "<em>$1</em>")
	formatted = codeRe.ReplaceAllString(formatted, "<code>$1</code>")
	formatted = strings.ReplaceAll(formatted, "\n\n", "</p><p>")
	formatted = strings.ReplaceAll(formatted, "\n", "<br>")

	if strings.Contains(formatted, "</p><p>") || strings.Contains(formatted, "<br>") {
		formatted = "<p>" + formatted + "</p>"
	}
	return formatted
}

// SpanKind classifies an inline span.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
)

// Span is a run of text with one inline style. Terminal renderers style
// spans directly instead of going through the HTML form.
type Span struct {
	Kind SpanKind
	Text string
}

// Spans splits one line of the markdown subset into styled runs. Newlines
// are the caller's concern; a line containing them is treated as plain text
// around the markers.
func Spans(line string) []Span {
	var spans []Span
	rest := line
	for rest != "" {
		loc, kind := nextMarker(rest)
		if loc == nil {
			spans = append(spans, Span{Kind: SpanPlain, Text: rest})
			break
		}
		if loc[0] > 0 {
			spans = append(spans, Span{Kind: SpanPlain, Text: rest[:loc[0]]})
		}
		spans = append(spans, Span{Kind: kind, Text: rest[loc[2]:loc[3]]})
		rest = rest[loc[1]:]
	}
	return spans
}

// nextMarker finds the earliest inline marker in s. Bold wins ties with
// italic at the same offset.
func nextMarker(s string) ([]int, SpanKind) {
	var best []int
	kind := SpanPlain
	for _, cand := range []struct {
		re   *regexp.Regexp
		kind SpanKind
	}{
		{boldRe, SpanBold},
		{italicRe, SpanItalic},
		{codeRe, SpanCode},
	} {
		loc := cand.re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		if best == nil || loc[0] < best[0] {
			best = loc
			kind = cand.kind
		}
	}
	return best, kind
}
