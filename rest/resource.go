package rest

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/restkit/di"
)

// Operation declares a single REST operation exposed by a resource.
// Declarations drive both route mounting and the published API descriptor,
// so the two can never drift apart.
type Operation struct {
	// Method is the HTTP method (GET, POST, ...).
	Method string `json:"method" yaml:"method"`
	// Path is relative to the resource path ("" or "/" for the collection root).
	Path string `json:"path" yaml:"path"`
	// Summary is a one-line human description for the descriptor.
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`
	// OperationID uniquely identifies this operation in the descriptor.
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	// Tags group operations in the descriptor.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Definition describes a resource: its name, mount path relative to the API
// root, and the operations it declares.
type Definition struct {
	Name       string      `json:"name" yaml:"name"`
	Path       string      `json:"path" yaml:"path"`
	Operations []Operation `json:"operations" yaml:"operations"`
}

// Validate checks the definition for structural problems.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("resource definition requires a name")
	}
	if !strings.HasPrefix(d.Path, "/") {
		return fmt.Errorf("resource %q path must start with / (got: %q)", d.Name, d.Path)
	}
	seen := make(map[string]bool, len(d.Operations))
	routes := make(map[string]bool, len(d.Operations))
	for _, op := range d.Operations {
		if op.Method == "" {
			return fmt.Errorf("resource %q declares an operation without a method", d.Name)
		}
		if op.OperationID != "" {
			if seen[op.OperationID] {
				return fmt.Errorf("resource %q declares duplicate operationId %q", d.Name, op.OperationID)
			}
			seen[op.OperationID] = true
		}
		key := d.routeKey(op)
		if routes[key] {
			return fmt.Errorf("resource %q declares duplicate route %s", d.Name, key)
		}
		routes[key] = true
	}
	return nil
}

// RoutePath returns the gin route path of op relative to the API root:
// the resource path joined with the operation path.
func (d Definition) RoutePath(op Operation) string {
	p := strings.TrimSuffix(d.Path, "/") + op.Path
	p = strings.TrimSuffix(p, "/")
	if p == "" {
		return "/"
	}
	return p
}

func (d Definition) routeKey(op Operation) string {
	return strings.ToUpper(op.Method) + " " + d.RoutePath(op)
}

// Resource is implemented by REST resource providers. Implementations
// describe themselves through Definition and mount their own routes,
// resolving collaborators through the container.
type Resource interface {
	// Definition returns the declared shape of the resource.
	Definition() Definition

	// Mount registers the resource's handlers on the group. The group is
	// rooted at the API root, so handlers attach under Definition().Path.
	// Dependencies are resolved through c, which is the host container and
	// therefore falls back to the linked application container.
	Mount(group *gin.RouterGroup, c di.Container) error
}
