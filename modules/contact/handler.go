package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/usstm/contact-form/pkg/cors"
	"github.com/usstm/contact-form/pkg/email"
	"github.com/usstm/contact-form/pkg/logger"
)

const (
	bodySuccess     = "Success"
	bodyBadRequest  = "Bad Request"
	bodyServerError = "Internal Server Error"
)

// Handler serves the contact endpoint.
type Handler struct {
	cfg    Config
	sender email.Sender
	log    *slog.Logger
}

func NewHandler(cfg Config, sender email.Sender, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		cfg:    cfg,
		sender: sender,
		log:    log.With(logger.Component("contact")),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		cors.Preflight(w, r, h.cfg.OriginURL)
		return
	}
	h.submit(w, r)
}

// submit handles every non-preflight method. Anything that goes wrong before
// the provider answers, panics included, ends in 400.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	defer func() {
		if rec := recover(); rec != nil {
			h.badRequest(ctx, w, fmt.Errorf("panic: %v", rec))
		}
	}()

	directory := NewDirectory(h.cfg.Recipients)

	sub, err := DecodeSubmission(w, r)
	if err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	recipient, ok := directory.Lookup(sub.NatureOfRequest)
	if !ok {
		if h.cfg.StrictCategories {
			h.badRequest(ctx, w, fmt.Errorf("%w: %q", ErrUnknownCategory, sub.NatureOfRequest))
			return
		}
		h.log.WarnContext(ctx, "unknown category, sending without recipient", logger.Category(sub.NatureOfRequest))
	}

	msg, err := BuildMessage(ctx, h.cfg, sub, recipient)
	if err != nil {
		h.badRequest(ctx, w, err)
		return
	}

	res, err := h.sender.Send(ctx, msg)
	switch {
	case errors.Is(err, email.ErrProviderRejected):
		h.log.ErrorContext(ctx, "email delivery rejected",
			logger.ProviderCode(res.ErrorCode),
			logger.ProviderMessage(res.Message),
			logger.Category(sub.NatureOfRequest),
			logger.Error(err),
		)
		respond(w, http.StatusInternalServerError, bodyServerError)
		return
	case err != nil:
		h.badRequest(ctx, w, err)
		return
	}

	h.log.InfoContext(ctx, "contact form relayed",
		logger.MessageID(res.MessageID),
		logger.Category(sub.NatureOfRequest),
	)
	cors.Allow(w, h.cfg.OriginURL, cors.SubmitMethods)
	respond(w, http.StatusOK, bodySuccess)
}

func (h *Handler) badRequest(ctx context.Context, w http.ResponseWriter, err error) {
	h.log.ErrorContext(ctx, "contact form request failed", logger.Error(err))
	respond(w, http.StatusBadRequest, bodyBadRequest)
}

func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
