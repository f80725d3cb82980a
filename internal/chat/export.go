package chat

import (
	"fmt"
	"io"
	"time"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// ExportTranscript writes the recorded conversation as a standalone HTML
// document, with each turn run through the structural markup transform.
func (c *Client) ExportTranscript(w io.Writer) error {
	history := c.History()

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Conversation transcript</title></head>\n<body>\n"); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	for _, msg := range history {
		stamp := ""
		if !msg.Timestamp.IsZero() {
			stamp = msg.Timestamp.Format(exportTimeLayout)
		}
		if _, err := fmt.Fprintf(w, "<div class=%q><h4>%s <small>%s</small></h4>%s</div>\n",
			"message "+msg.Role, msg.Role, stamp, FormatHTML(msg.Content)); err != nil {
			return fmt.Errorf("failed to write transcript: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "</body>\n</html>\n"); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// ExportFilename returns a timestamped default name for transcript files.
func ExportFilename(now time.Time) string {
	return "transcript-" + now.Format("20060102-150405") + ".html"
}
