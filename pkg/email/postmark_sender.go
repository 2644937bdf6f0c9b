package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkSender delivers messages through Postmark's transactional API.
type PostmarkSender struct {
	client *postmark.Client
	stream string
}

func NewPostmarkSender(cfg Config) (*PostmarkSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}

	client := postmark.NewClient(cfg.PostmarkServerToken, "")
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}

	return &PostmarkSender{client: client, stream: cfg.MessageStream}, nil
}

// Send posts msg to Postmark. A non-zero ErrorCode, whether in a 200 body or
// in an error status reply, is reported as ErrProviderRejected together with
// the populated Result; any other failure is ErrFailedToSendEmail.
func (s *PostmarkSender) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}

	stream := msg.MessageStream
	if stream == "" {
		stream = s.stream
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:          msg.From,
		To:            msg.To,
		ReplyTo:       msg.ReplyTo,
		Subject:       msg.Subject,
		Tag:           msg.Tag,
		TextBody:      msg.TextBody,
		HTMLBody:      msg.HTMLBody,
		MessageStream: stream,
	})

	res := Result{
		MessageID:   resp.MessageID,
		SubmittedAt: resp.SubmittedAt,
		ErrorCode:   resp.ErrorCode,
		Message:     resp.Message,
	}

	// Rejections answered with an HTTP error status come back as an APIError
	// with an empty response.
	var apiErr postmark.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode != 0 {
		res.ErrorCode = apiErr.ErrorCode
		res.Message = apiErr.Message
	}

	// A non-zero code is checked before err to keep provider rejections apart
	// from transport errors.
	if res.ErrorCode != 0 {
		return res, errors.Join(
			ErrProviderRejected,
			fmt.Errorf("postmark error: %d - %s", res.ErrorCode, res.Message),
		)
	}
	if err != nil {
		return res, errors.Join(ErrFailedToSendEmail, err)
	}
	return res, nil
}
