package email

// Config selects and configures the Sender.
// With no Postmark token the DevSender is used when DevDir is set.
type Config struct {
	PostmarkServerToken string `env:"POSTMARK_API_KEY"`
	MessageStream       string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound"`
	BaseURL             string `env:"POSTMARK_BASE_URL"`
	DevDir              string `env:"EMAIL_DEV_DIR"`
}

// NewSender builds the Sender described by cfg.
func NewSender(cfg Config) (Sender, error) {
	if cfg.PostmarkServerToken != "" {
		s, err := NewPostmarkSender(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	if cfg.DevDir != "" {
		return NewDevSender(cfg.DevDir), nil
	}
	return nil, ErrInvalidConfig
}
