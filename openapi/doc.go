// Package openapi builds and publishes the API descriptor.
//
// The descriptor is derived from the same resource definitions the dispatch
// layer mounts, so the published document always reflects the routes that
// are actually served. Static metadata (title, contact, license, servers)
// comes from Config; Build combines the two into an immutable Document that
// a Publisher serves as /openapi.json and /openapi.yaml.
package openapi
