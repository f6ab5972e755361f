// Package di provides the dependency injection containers used by restkit
// applications, and the bridge that reconciles them.
//
// Two containers exist in a running server. The guest container is the
// application's object graph, built once per process by the lifecycle layer.
// The host container belongs to the dispatch layer and resolves the
// dependencies of REST resources. Link establishes a one-way forwarding
// relationship so the host can satisfy guest-registered keys:
//
//	guest := di.NewContainer()
//	guest.RegisterSingleton("session_store", store)
//
//	host := di.NewContainer()
//	if err := di.Link(host, guest); err != nil { ... }
//	store := di.MustResolve[SessionStore](host, "session_store")
//
// Registration supports eager, lazy, and singleton modes with type-safe
// resolution using Go generics.
package di
