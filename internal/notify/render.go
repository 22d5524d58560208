package notify

import (
	"bytes"
	"fmt"
	"html"

	"github.com/ethanbaker/wishes/pkg/wish"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const DEFAULT_SUBJECT = "🎉 Birthday Wish Submitted!"

var (
	mdRenderer    = goldmark.New(goldmark.WithExtensions(extension.GFM))
	htmlSanitizer = bluemonday.UGCPolicy()
)

// Compose renders the notification for a submission
func Compose(sub *wish.Submission, subject string, recipients []string) Message {
	if subject == "" {
		subject = DEFAULT_SUBJECT
	}

	return Message{
		Subject:    subject,
		Text:       fmt.Sprintf("Wish: %s\nTime: %s", sub.Wish, sub.Timestamp()),
		HTML:       fmt.Sprintf("<div>%s</div>\n<p><small>Received %s</small></p>", renderMarkdown(sub.Wish), html.EscapeString(sub.Timestamp())),
		Recipients: recipients,
	}
}

// renderMarkdown converts the wish to sanitized HTML
func renderMarkdown(src string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return htmlSanitizer.Sanitize(buf.String())
}
