// Package component defines the core interfaces for lifecycle-managed
// parts of a restkit application.
//
// Components represent services that require startup, shutdown, and health
// monitoring. They are registered with the bootstrap package for automatic
// lifecycle management in deterministic order: the API composition root is
// registered before the HTTP server so wiring completes before the first
// request is accepted.
package component
