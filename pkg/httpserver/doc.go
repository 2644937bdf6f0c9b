// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM is received or the
// listener fails. In-flight requests get ShutdownTimeout to finish.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
