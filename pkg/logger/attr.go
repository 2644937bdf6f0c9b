package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Category records the contact form category under the key "category".
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// ProviderCode records the delivery provider's error code.
func ProviderCode(code int64) slog.Attr {
	return slog.Int64("provider_code", code)
}

// ProviderMessage records the delivery provider's message.
func ProviderMessage(msg string) slog.Attr {
	if msg == "" {
		return slog.Attr{}
	}
	return slog.String("provider_message", msg)
}

// MessageID records the provider message identifier under the key "message_id".
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}
