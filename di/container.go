package di

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/skillsenselab/restkit/logger"
)

// RegistrationMode determines how a component should be resolved
type RegistrationMode int

const (
	Eager     RegistrationMode = iota // Initialize immediately on registration
	Lazy                              // Initialize on first resolve
	Singleton                         // Pre-created instance
)

func (m RegistrationMode) String() string {
	switch m {
	case Eager:
		return "eager"
	case Lazy:
		return "lazy"
	case Singleton:
		return "singleton"
	default:
		return "unknown"
	}
}

// Container defines the interface for a dependency injection container.
// Two containers play distinct roles in a restkit application: the guest
// container holds application services and is built once per process, the
// host container is the dispatch layer's resolution surface. See Link for
// how the two are bridged.
type Container interface {
	Register(key string, constructor interface{}) error
	RegisterLazy(key string, constructor interface{}, options ...LazyOption) error
	RegisterEager(key string, constructor interface{}) error
	RegisterSingleton(key string, instance interface{}) error
	Resolve(key string) (interface{}, error)
	MustResolve(key string) interface{}
	Close() error

	// Introspection
	Registrations() []RegistrationInfo
}

// RegistrationInfo describes a registered component for introspection.
type RegistrationInfo struct {
	Key         string
	Mode        RegistrationMode // Eager, Lazy, or Singleton
	Initialized bool
}

// GraphContainer is the standard object-graph container.
type GraphContainer struct {
	components map[string]*componentRegistration
	singletons map[string]interface{}
	mutex      sync.RWMutex

	// fallback is the linked guest container, set at most once via Link.
	fallback Container
}

type componentRegistration struct {
	key         string
	constructor interface{}
	mode        RegistrationMode
	instance    interface{}
	mutex       sync.RWMutex
	initialized bool
	lastError   error
	retryPolicy *RetryPolicy
}

// RetryPolicy controls retries of lazy component construction.
type RetryPolicy struct {
	MaxAttempts       int
	InitialBackoffMs  int
	MaxBackoffMs      int
	BackoffMultiplier float64
}

// LazyOption customizes a lazy registration.
type LazyOption func(*componentRegistration)

// NewContainer creates an empty container.
func NewContainer() Container {
	return &GraphContainer{
		components: make(map[string]*componentRegistration),
		singletons: make(map[string]interface{}),
	}
}

// Register component with lazy loading by default (most common case)
func (c *GraphContainer) Register(key string, constructor interface{}) error {
	return c.RegisterLazy(key, constructor)
}

// RegisterLazy registers a component for lazy initialization
func (c *GraphContainer) RegisterLazy(key string, constructor interface{}, options ...LazyOption) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	registration := &componentRegistration{
		key:         key,
		constructor: constructor,
		mode:        Lazy,
		retryPolicy: defaultRetryPolicy(),
	}

	for _, opt := range options {
		opt(registration)
	}

	c.components[key] = registration
	return nil
}

// RegisterEager registers a component for immediate initialization
func (c *GraphContainer) RegisterEager(key string, constructor interface{}) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	registration := &componentRegistration{
		key:         key,
		constructor: constructor,
		mode:        Eager,
	}

	instance, err := c.callConstructor(constructor)
	if err != nil {
		return fmt.Errorf("failed to initialize eager component '%s': %w", key, err)
	}

	registration.instance = instance
	registration.initialized = true

	c.components[key] = registration
	return nil
}

// RegisterSingleton registers a pre-created instance
func (c *GraphContainer) RegisterSingleton(key string, instance interface{}) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.singletons[key] = instance
	return nil
}

// Resolve gets a component instance. Keys this container cannot satisfy
// directly are forwarded to the linked guest container, if any.
func (c *GraphContainer) Resolve(key string) (interface{}, error) {
	// Check singletons first
	c.mutex.RLock()
	if singleton, exists := c.singletons[key]; exists {
		c.mutex.RUnlock()
		return singleton, nil
	}

	registration, exists := c.components[key]
	fallback := c.fallback
	c.mutex.RUnlock()

	if !exists {
		if fallback != nil {
			return fallback.Resolve(key)
		}
		return nil, fmt.Errorf("component not registered: %s", key)
	}

	return c.resolveComponent(registration)
}

// MustResolve resolves a component, panicking on error.
func (c *GraphContainer) MustResolve(key string) interface{} {
	instance, err := c.Resolve(key)
	if err != nil {
		panic(err)
	}
	return instance
}

func (c *GraphContainer) resolveComponent(registration *componentRegistration) (interface{}, error) {
	switch registration.mode {
	case Eager:
		return c.resolveEager(registration)
	case Lazy:
		return c.resolveLazy(registration)
	default:
		return nil, fmt.Errorf("unknown registration mode for component: %s", registration.key)
	}
}

func (c *GraphContainer) resolveEager(registration *componentRegistration) (interface{}, error) {
	registration.mutex.RLock()
	defer registration.mutex.RUnlock()

	if registration.initialized && registration.instance != nil {
		return registration.instance, nil
	}
	return nil, fmt.Errorf("eager component not properly initialized: %s", registration.key)
}

func (c *GraphContainer) resolveLazy(registration *componentRegistration) (interface{}, error) {
	registration.mutex.RLock()
	if registration.initialized && registration.instance != nil && registration.lastError == nil {
		instance := registration.instance
		registration.mutex.RUnlock()
		return instance, nil
	}
	registration.mutex.RUnlock()

	return c.initializeWithRetry(registration)
}

func (c *GraphContainer) initializeWithRetry(registration *componentRegistration) (interface{}, error) {
	registration.mutex.Lock()
	defer registration.mutex.Unlock()

	// Double-check pattern
	if registration.initialized && registration.instance != nil && registration.lastError == nil {
		return registration.instance, nil
	}

	var lastError error
	backoffMs := registration.retryPolicy.InitialBackoffMs

	for attempt := 0; attempt < registration.retryPolicy.MaxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(backoffMs) * time.Millisecond)
			backoffMs = int(float64(backoffMs) * registration.retryPolicy.BackoffMultiplier)
			if backoffMs > registration.retryPolicy.MaxBackoffMs {
				backoffMs = registration.retryPolicy.MaxBackoffMs
			}
		}

		instance, err := c.callConstructor(registration.constructor)
		if err != nil {
			lastError = err
			logger.Debug("Lazy component initialization failed", map[string]interface{}{
				"component": registration.key,
				"attempt":   attempt + 1,
				"error":     err.Error(),
			})
			continue
		}

		registration.instance = instance
		registration.initialized = true
		registration.lastError = nil
		return instance, nil
	}

	registration.lastError = lastError
	return nil, fmt.Errorf("failed to initialize lazy component '%s' after %d attempts: %w",
		registration.key, registration.retryPolicy.MaxAttempts, lastError)
}

func (c *GraphContainer) callConstructor(constructor interface{}) (interface{}, error) {
	fn := reflect.ValueOf(constructor)
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("constructor must be a function")
	}

	fnType := fn.Type()

	switch fnType.NumIn() {
	case 0:
		// Simple constructor: func() (Service, error) or func() Service
		results := fn.Call(nil)
		return handleConstructorResults(results)

	case 1:
		// Context-aware constructor: func(context.Context) (Service, error)
		if fnType.In(0).String() == "context.Context" {
			ctx := context.Background()
			results := fn.Call([]reflect.Value{reflect.ValueOf(ctx)})
			return handleConstructorResults(results)
		}
		fallthrough

	default:
		// DI-aware constructor: func(Container) (Service, error)
		results := fn.Call([]reflect.Value{reflect.ValueOf(c)})
		return handleConstructorResults(results)
	}
}

func handleConstructorResults(results []reflect.Value) (interface{}, error) {
	switch len(results) {
	case 1:
		return results[0].Interface(), nil
	case 2:
		instance := results[0].Interface()
		if err := results[1].Interface(); err != nil {
			return nil, err.(error)
		}
		return instance, nil
	default:
		return nil, fmt.Errorf("constructor must return either (instance) or (instance, error)")
	}
}

// Registrations returns info about all registered components for introspection.
// Entries of a linked guest container are not included.
func (c *GraphContainer) Registrations() []RegistrationInfo {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result := make([]RegistrationInfo, 0, len(c.components)+len(c.singletons))

	for key, reg := range c.components {
		reg.mutex.RLock()
		result = append(result, RegistrationInfo{
			Key:         key,
			Mode:        reg.mode,
			Initialized: reg.initialized,
		})
		reg.mutex.RUnlock()
	}

	for key := range c.singletons {
		result = append(result, RegistrationInfo{
			Key:         key,
			Mode:        Singleton,
			Initialized: true,
		})
	}

	return result
}

// Close closes all initialized components that implement Close. A linked
// guest container is not closed: its lifetime is owned by the process, not
// by the host that borrowed it.
func (c *GraphContainer) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, registration := range c.components {
		if registration.initialized && registration.instance != nil {
			if closer, ok := registration.instance.(interface{ Close() error }); ok {
				closer.Close()
			}
		}
	}

	for _, singleton := range c.singletons {
		if closer, ok := singleton.(interface{ Close() error }); ok {
			closer.Close()
		}
	}

	return nil
}

// WithRetryPolicy overrides the retry policy of a lazy registration.
func WithRetryPolicy(policy *RetryPolicy) LazyOption {
	return func(reg *componentRegistration) {
		reg.retryPolicy = policy
	}
}

func defaultRetryPolicy() *RetryPolicy {
	return &RetryPolicy{
		MaxAttempts:       3,
		InitialBackoffMs:  1000,
		MaxBackoffMs:      30000,
		BackoffMultiplier: 2.0,
	}
}
