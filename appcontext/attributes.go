package appcontext

import (
	"sync"

	"github.com/skillsenselab/restkit/di"
)

// ContainerAttribute is the well-known attribute key under which the
// application (guest) container must be stored before the API application
// bootstraps. The lifecycle layer writes it exactly once, at process start.
const ContainerAttribute = "restkit.app.container"

// Attributes is the server-context attribute store. It carries values set by
// the process-lifecycle layer for consumption by the composition root, most
// importantly the guest container reference.
type Attributes struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

// NewAttributes creates an empty attribute store.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]interface{})}
}

// Set stores a value under the given key, replacing any previous value.
func (a *Attributes) Set(key string, value interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.values[key] = value
}

// Get retrieves a value. The second return reports whether the key was set.
func (a *Attributes) Get(key string) (interface{}, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.values[key]
	return v, ok
}

// SetContainer stores the guest container under ContainerAttribute.
func (a *Attributes) SetContainer(c di.Container) {
	a.Set(ContainerAttribute, c)
}

// Container retrieves the guest container stored under ContainerAttribute.
// It returns false when the attribute is absent or holds a non-container
// value; the composition root treats either case as a configuration error.
func (a *Attributes) Container() (di.Container, bool) {
	v, ok := a.Get(ContainerAttribute)
	if !ok {
		return nil, false
	}
	c, ok := v.(di.Container)
	return c, ok
}
