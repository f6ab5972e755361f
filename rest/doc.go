// Package rest implements the resource registry: an explicit registration
// table mapping namespaces to REST resources.
//
// Resource packages register themselves with rest.Register (or MustRegister
// from init), declaring their operations up front in a Definition. The
// application bootstrap discovers resources by namespace, mounts their
// routes under the API root, and derives the published API descriptor from
// the same definitions, so routes and descriptor share one source of truth.
//
//	func init() {
//		rest.MustRegister("api", &UserResource{})
//	}
package rest
