package contact

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/a-h/templ"

	"github.com/usstm/contact-form/pkg/email"
	"github.com/usstm/contact-form/pkg/email/templates"
)

type field struct {
	label string
	value string
}

func fields(s Submission) []field {
	return []field{
		{"Sender", s.FullName()},
		{"TMU Email", s.Email},
		{"Program", s.Program},
		{"Year", s.NormalizedYear()},
		{"Nature of Request", s.NatureOfRequest},
	}
}

// RenderText renders the plain-text notification. Leading whitespace is
// removed from every line, including lines of the free-text message, and the
// result is trimmed.
func RenderText(s Submission) string {
	var b strings.Builder
	for _, f := range fields(s) {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	b.WriteString("Message:\n\n")
	b.WriteString(s.Message)
	return stripIndents(b.String())
}

func stripIndents(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeftFunc(line, unicode.IsSpace)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// NotificationHTML is the HTML notification body. Submitted values are
// HTML-escaped, so a value containing <, > or & reaches the inbox as text
// rather than markup.
func NotificationHTML(s Submission) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, f := range fields(s) {
			if _, err := fmt.Fprintf(w, "<strong>%s:</strong> %s\n<br>\n", f.label, templ.EscapeString(f.value)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "<strong>Message:</strong>\n<br><br>\n"+templ.EscapeString(s.Message))
		return err
	})
}

// BuildMessage assembles the outbound email for s addressed to recipient.
func BuildMessage(ctx context.Context, cfg Config, s Submission, recipient string) (email.Message, error) {
	html, err := templates.Render(ctx, NotificationHTML(s))
	if err != nil {
		return email.Message{}, fmt.Errorf("render html body: %w", err)
	}

	return email.Message{
		From:     cfg.TechCommittee,
		To:       recipient,
		ReplyTo:  s.Email,
		Subject:  cfg.SubjectPrefix + s.Subject,
		TextBody: RenderText(s),
		HTMLBody: html,
		Tag:      cfg.Tag,
	}, nil
}
