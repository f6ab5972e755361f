package rest

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/restkit/di"
)

// registry is the global namespace → resources table. Resource packages
// register themselves explicitly (typically from an init function or the
// composition root); there is no reflective scanning.
var registry = &resourceRegistry{
	resources: make(map[string][]Resource),
}

type resourceRegistry struct {
	mu        sync.RWMutex
	resources map[string][]Resource
}

// Register adds a resource to the given namespace. The namespace must be
// non-empty, the resource definition must validate, and resource names and
// declared method+path routes must be unique within a namespace. Gin would
// otherwise panic on the colliding route at mount time.
func Register(namespace string, r Resource) error {
	if namespace == "" {
		return fmt.Errorf("rest: namespace must not be empty")
	}
	if r == nil {
		return fmt.Errorf("rest: resource must not be nil")
	}
	def := r.Definition()
	if err := def.Validate(); err != nil {
		return fmt.Errorf("rest: %w", err)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	routes := make(map[string]string)
	for _, existing := range registry.resources[namespace] {
		ed := existing.Definition()
		if ed.Name == def.Name {
			return fmt.Errorf("rest: resource %q already registered in namespace %q", def.Name, namespace)
		}
		for _, op := range ed.Operations {
			routes[ed.routeKey(op)] = ed.Name
		}
	}
	for _, op := range def.Operations {
		key := def.routeKey(op)
		if owner, ok := routes[key]; ok {
			return fmt.Errorf("rest: resource %q route %s collides with resource %q in namespace %q",
				def.Name, key, owner, namespace)
		}
	}
	registry.resources[namespace] = append(registry.resources[namespace], r)
	return nil
}

// MustRegister is like Register but panics on error. Intended for package
// init functions where registration failure is a programming error.
func MustRegister(namespace string, r Resource) {
	if err := Register(namespace, r); err != nil {
		panic(err)
	}
}

// Discover returns the resources registered under the namespace, in
// registration order. An unknown namespace yields an empty slice, not an
// error: whether a deployment ships resources is a deployment concern.
func Discover(namespace string) []Resource {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]Resource, len(registry.resources[namespace]))
	copy(out, registry.resources[namespace])
	return out
}

// Definitions returns the definitions of all resources in the namespace.
func Definitions(namespace string) []Definition {
	resources := Discover(namespace)
	defs := make([]Definition, 0, len(resources))
	for _, r := range resources {
		defs = append(defs, r.Definition())
	}
	return defs
}

// Namespaces returns all namespaces with at least one registered resource.
func Namespaces() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]string, 0, len(registry.resources))
	for ns := range registry.resources {
		out = append(out, ns)
	}
	return out
}

// Clear removes all resources registered under the namespace.
// Intended for tests.
func Clear(namespace string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.resources, namespace)
}

// MountAll mounts every resource in the namespace onto the group, resolving
// dependencies through the container. It stops at the first failure.
func MountAll(namespace string, group *gin.RouterGroup, c di.Container) error {
	for _, r := range Discover(namespace) {
		if err := mount(r, group, c); err != nil {
			return err
		}
	}
	return nil
}

// mount runs a single resource's Mount. Gin panics on conflicting route
// registrations (a resource mounting routes its definition never declared),
// so a panic is converted into an error and the caller fails cleanly.
func mount(r Resource, group *gin.RouterGroup, c di.Container) (err error) {
	name := r.Definition().Name
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("rest: mounting resource %q: %v", name, rec)
		}
	}()
	if err := r.Mount(group, c); err != nil {
		return fmt.Errorf("rest: mounting resource %q: %w", name, err)
	}
	return nil
}
