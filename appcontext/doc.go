// Package appcontext holds server-context state shared between the process
// lifecycle layer and the API composition root. The lifecycle layer builds
// the application container once per process and stores it here under
// ContainerAttribute; the composition root reads it during bootstrap and
// fails fast when it is absent.
package appcontext
