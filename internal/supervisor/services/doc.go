// Reviewscope - App Store Review Sentiment Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reviewscope

/*
Package services provides suture.Service wrappers for Reviewscope components.

Each wrapper translates a lifecycle (ListenAndServe/Shutdown, a periodic
function) into suture's context-aware Serve method:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTPServerService wraps *http.Server. Canceling the context triggers
Shutdown with a separate timeout. A listener failure is returned so the
supervisor restarts the server.

TickerService calls a function immediately and then on a fixed interval.
The server uses it to publish the uptime and scorer cache gauges.

Every wrapper implements fmt.Stringer so supervisor events name it.
*/
package services
