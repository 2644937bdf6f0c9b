// Command server runs the contact-form relay.
//
// Configuration is read from the environment (and an optional .env file):
// see contact.Config, email.Config and httpserver.Config for the variables.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/usstm/contact-form/modules/contact"
	"github.com/usstm/contact-form/pkg/clientip"
	"github.com/usstm/contact-form/pkg/config"
	"github.com/usstm/contact-form/pkg/email"
	"github.com/usstm/contact-form/pkg/environment"
	"github.com/usstm/contact-form/pkg/httpserver"
	"github.com/usstm/contact-form/pkg/logger"
	"github.com/usstm/contact-form/pkg/requestid"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"contact-form"`
	LogLevel    string `env:"LOG_LEVEL"`
}

func main() {
	var app appConfig
	config.MustLoad(&app)

	env := environment.Parse(app.Env)
	opts := []logger.Option{
		logger.WithEnvironment(env, app.ServiceName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	}
	if app.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(app.LogLevel, slog.LevelInfo)))
	}
	log := logger.New(opts...)
	slog.SetDefault(log)

	ctx := environment.WithContext(context.Background(), env)
	if err := run(ctx, env, log); err != nil {
		log.ErrorContext(ctx, "contact-form relay stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, env environment.Environment, log *slog.Logger) error {
	var (
		contactCfg contact.Config
		emailCfg   email.Config
		serverCfg  httpserver.Config
	)
	if err := config.Load(&contactCfg); err != nil {
		return err
	}
	if err := config.Load(&emailCfg); err != nil {
		return err
	}
	if err := config.Load(&serverCfg); err != nil {
		return err
	}

	sender, err := email.NewSender(emailCfg)
	if err != nil {
		return err
	}

	if missing := contact.NewDirectory(contactCfg.Recipients).Unconfigured(); len(missing) > 0 {
		log.WarnContext(ctx, "categories without a configured recipient",
			slog.String("categories", strings.Join(missing, ", ")),
			logger.Component("contact"),
		)
	}

	log.InfoContext(ctx, "configuration loaded",
		slog.String("origin", contactCfg.OriginURL),
		slog.String("sender", senderName(sender)),
		slog.Bool("strict_categories", contactCfg.StrictCategories),
	)

	router := contact.Router(contact.RouterOptions{
		Handler:     contact.NewHandler(contactCfg, sender, log),
		Logger:      log,
		Environment: env,
	})

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

func senderName(s email.Sender) string {
	switch s.(type) {
	case *email.PostmarkSender:
		return "postmark"
	case *email.DevSender:
		return "dev"
	default:
		return "unknown"
	}
}
