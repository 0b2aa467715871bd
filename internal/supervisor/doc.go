// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

/*
Package supervisor runs the long-lived parts of the server under a suture v4
supervisor tree.

The tree has two layers. The data layer holds the query cache janitor and
the api layer holds the HTTP server (services.HTTPServerService). Each
layer restarts its own failed services with backoff, so a janitor panic
never takes the listener down.

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(queryCache)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := tree.Serve(ctx)

Serve returns when ctx is canceled or when a service returns an error
wrapping suture.ErrTerminateSupervisorTree, which HTTPServerService does
when it cannot bind its address.
*/
package supervisor
