// Package server wraps http.Server with graceful shutdown, sensible
// timeout defaults, and environment-driven configuration.
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := srv.Start(ctx, mux); err != nil {
//		log.Fatal(err)
//	}
package server
