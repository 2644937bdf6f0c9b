// Package logger builds the service's *slog.Logger.
//
// New applies functional options on top of production defaults (JSON, INFO,
// stdout) and wraps the handler so that attributes stored in a request
// context, such as the request id, are added to every record logged with a
// *Context method.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "contact-form"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "email delivery rejected",
//	    logger.ProviderCode(300),
//	    logger.Category("Finance Request"),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages and
// return an empty slog.Attr for nil values so callers can log unconditionally.
package logger
