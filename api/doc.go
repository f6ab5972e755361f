// Package api implements the composition root of a restkit REST server.
//
// An Application is created per server context in the Uninitialized state.
// Bootstrap performs the one-shot wiring sequence: framework log bridge,
// container bridge link, resource mounting, descriptor publication. Only a
// fully wired application reaches Ready and serves dispatch; any failure
// leaves the engine without namespace routes.
//
// Two containers are involved. The guest container holds application
// services, is built once per process by the lifecycle layer, and is handed
// over through the server-context attribute store. The host container is
// the dispatch layer's resolution surface; after bootstrap it falls back to
// the guest for any key it cannot satisfy itself.
package api
