package contact

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/usstm/contact-form/pkg/clientip"
	"github.com/usstm/contact-form/pkg/environment"
	"github.com/usstm/contact-form/pkg/httpserver"
	"github.com/usstm/contact-form/pkg/requestid"
)

// RouterOptions configures the service router.
type RouterOptions struct {
	Handler     http.Handler
	Logger      *slog.Logger
	Environment environment.Environment
}

// Router sends every path and method to the contact handler, except
// GET /healthz which answers the liveness check instead of being treated as
// a submission.
//
// Example:
//
//	h := contact.NewHandler(cfg, sender, log)
//	srv.Run(ctx, contact.Router(contact.RouterOptions{Handler: h, Logger: log}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	if opts.Environment != "" {
		r.Use(environment.Middleware(opts.Environment))
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	r.Get("/healthz", httpserver.HealthCheckHandler(log))

	r.Handle("/", opts.Handler)
	r.Handle("/*", opts.Handler)
	return r
}
