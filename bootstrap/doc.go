// Package bootstrap orchestrates process lifecycle for restkit services.
//
// It provides typed configuration, component registration, the application
// container, and startup/shutdown hooks. The App builds the application
// (guest) container once per process and publishes it through the
// server-context attribute store before components start, which is how the
// api.Application composition root receives it.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.RegisterComponent(apiComponent)    // wires the REST layer
//	app.RegisterComponent(serverComponent) // accepts traffic last
//	if err := app.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Components start in registration order and stop in reverse, with graceful
// shutdown on OS signals and health aggregation across the registry.
package bootstrap
