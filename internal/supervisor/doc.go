// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package supervisor provides process supervision for Reviewscope using suture v4.

The tree has two layers so housekeeping failures never restart the server:

	Root ("reviewscope")
	├── data-layer
	│   ├── uptime (TickerService)
	│   └── scorer-cache (TickerService)
	└── api-layer
	    └── http-server (HTTPServerService)

Supervisor events (start, stop, failure, backoff) are logged through slog
using the sutureslog adapter. The server passes a slog logger backed by the
zerolog global logger, so these events share its format.

# Usage

	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

After Serve returns, UnstoppedServiceReport lists services that ignored
cancellation past the shutdown timeout.
*/
package supervisor
