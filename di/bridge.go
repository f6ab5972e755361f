package di

import (
	"errors"
	"fmt"
)

// ErrAlreadyLinked is returned by Link when the host container already has a
// bridge link. A second link is never applied silently.
var ErrAlreadyLinked = errors.New("di: host container already linked to a guest container")

// ErrNilGuest is returned by Link when no guest container is supplied.
var ErrNilGuest = errors.New("di: guest container is nil")

// Link establishes a one-way bridge from host to guest: any key the host
// cannot resolve directly is forwarded to the guest container. The guest is
// read-only from the host's perspective, and resolution through the host
// yields exactly the instance the guest would return itself.
//
// A host may be linked at most once for its lifetime. Linking an
// already-linked host fails with ErrAlreadyLinked, even when the guest is
// the same container.
func Link(host, guest Container) error {
	if guest == nil {
		return ErrNilGuest
	}
	gc, ok := host.(*GraphContainer)
	if !ok {
		return fmt.Errorf("di: host container %T does not support bridge links", host)
	}

	gc.mutex.Lock()
	defer gc.mutex.Unlock()
	if gc.fallback != nil {
		return ErrAlreadyLinked
	}
	gc.fallback = guest
	return nil
}

// Linked reports whether the host container has an established bridge link.
func Linked(host Container) bool {
	gc, ok := host.(*GraphContainer)
	if !ok {
		return false
	}
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()
	return gc.fallback != nil
}
