// Package environment names the deployment environment the relay runs in and
// carries it through request contexts and structured logs.
//
// Parse normalises the APP_ENV value ("prod", "stage", "dev" and their long
// forms) to one of the Environment constants. Middleware attaches the value to
// every request context and LoggerExtractor exposes it to slog handlers built
// by the logger package.
package environment
