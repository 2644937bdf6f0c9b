package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// Message is one outbound email.
type Message struct {
	From          string `json:"from"`
	To            string `json:"to"`
	ReplyTo       string `json:"reply_to,omitempty"`
	Subject       string `json:"subject"`
	TextBody      string `json:"-"`
	HTMLBody      string `json:"-"`
	Tag           string `json:"tag,omitempty"`
	MessageStream string `json:"message_stream,omitempty"`
}

// Result is the provider's answer for a delivered or rejected message.
type Result struct {
	MessageID   string
	SubmittedAt time.Time
	ErrorCode   int64
	Message     string
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the sender identity and content. The recipient is left to
// the provider.
func (m Message) Validate() error {
	if strings.TrimSpace(m.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidMessage)
	}
	if !emailRegex.MatchString(m.From) {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if m.TextBody == "" && m.HTMLBody == "" {
		return fmt.Errorf("%w: TextBody or HTMLBody is required", ErrInvalidMessage)
	}
	return nil
}
