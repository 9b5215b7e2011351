// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor runs Reelmatch's long-lived services under suture v4.

The catalog is loaded before the tree starts, so the only supervised work is
serving HTTP:

	RootSupervisor ("reelmatch")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed server is restarted with suture's backoff. Cancelling the context
passed to Serve shuts the tree down, giving each service ShutdownTimeout to
stop. Supervisor events are logged through sutureslog, using the zerolog
bridge from the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)
*/
package supervisor
