package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("email: failed to send email")
	ErrProviderRejected  = errors.New("email: provider rejected message")
	ErrInvalidConfig     = errors.New("email: invalid config")
	ErrInvalidMessage    = errors.New("email: invalid message")
)
