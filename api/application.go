package api

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/restkit/appcontext"
	"github.com/skillsenselab/restkit/di"
	apperrors "github.com/skillsenselab/restkit/errors"
	"github.com/skillsenselab/restkit/logger"
	"github.com/skillsenselab/restkit/observability"
	"github.com/skillsenselab/restkit/openapi"
	"github.com/skillsenselab/restkit/rest"
	"github.com/skillsenselab/restkit/server"
)

// ErrAlreadyBootstrapped is returned when Bootstrap is invoked on an
// application that already reached Ready. The transition is one-shot per
// server context; a second invocation is always a caller bug.
var ErrAlreadyBootstrapped = errors.New("api: application already bootstrapped")

// State is the application lifecycle state.
type State int

const (
	// StateUninitialized is the initial state. The application refuses
	// dispatch: no resource routes are mounted.
	StateUninitialized State = iota
	// StateReady means wiring completed: the container bridge is linked,
	// resources are mounted, and the descriptor is published.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Application is the composition root of a restkit REST server. It bridges
// the application (guest) container into the dispatch layer's host
// container, mounts the namespace's resources, and publishes the API
// descriptor. One Application is built per server context.
type Application struct {
	cfg     Config
	engine  *gin.Engine
	attrs   *appcontext.Attributes
	host    di.Container
	log     *logger.Logger
	metrics *observability.Metrics

	mu        sync.Mutex
	state     State
	publisher *openapi.Publisher
}

// New creates an Application in the Uninitialized state. The engine is the
// dispatch surface routes will be mounted on; attrs is the server-context
// attribute store the lifecycle layer has populated.
func New(cfg Config, engine *gin.Engine, attrs *appcontext.Attributes, log *logger.Logger) (*Application, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Configuration(err.Error()).WithCause(err)
	}
	if engine == nil {
		return nil, apperrors.Configuration("api: engine must not be nil")
	}
	if attrs == nil {
		return nil, apperrors.Configuration("api: attribute store must not be nil")
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	return &Application{
		cfg:    cfg,
		engine: engine,
		attrs:  attrs,
		host:   di.NewContainer(),
		log:    log.WithComponent("api"),
	}, nil
}

// WithMetrics enables operation and descriptor-fetch metrics.
func (a *Application) WithMetrics(m *observability.Metrics) *Application {
	a.metrics = m
	return a
}

// HostContainer returns the dispatch-layer container. After a successful
// Bootstrap it resolves guest-registered keys through the bridge link.
func (a *Application) HostContainer() di.Container { return a.host }

// State returns the current lifecycle state.
func (a *Application) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Ready reports whether the application completed bootstrap.
func (a *Application) Ready() bool { return a.State() == StateReady }

// Descriptor returns the published document, or nil before bootstrap.
func (a *Application) Descriptor() *openapi.Document {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.publisher == nil {
		return nil
	}
	return a.publisher.Document()
}

// Bootstrap performs the one-shot wiring sequence:
//
//  1. redirect framework logs into the structured logger,
//  2. read the guest container from the attribute store and link it as the
//     host container's fallback,
//  3. apply the JSON codec feature and mount all resources registered in
//     the configured namespace under the API root,
//  4. build and publish the API descriptor from the same definitions.
//
// Any failure aborts the transition: the state stays Uninitialized and no
// routes are mounted, so the failure cannot go unnoticed behind a partially
// wired API. A failed Bootstrap may be retried once the cause is fixed;
// a second Bootstrap after success returns ErrAlreadyBootstrapped.
func (a *Application) Bootstrap(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateReady {
		return ErrAlreadyBootstrapped
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanBootstrap)
	defer span.End()

	// Step 1: framework log bridge. Replaces rather than stacks, so a
	// retried bootstrap never installs a second bridge.
	observability.SetSpanAttribute(ctx, observability.AttrBootstrapStep, "log-bridge")
	server.RedirectFrameworkLogs(a.log)

	// Step 2: container bridge.
	observability.SetSpanAttribute(ctx, observability.AttrBootstrapStep, "container-bridge")
	if !di.Linked(a.host) {
		guest, ok := a.attrs.Container()
		if !ok {
			err := apperrors.Configuration("guest container missing from server context attributes")
			a.fail(ctx, err)
			return err
		}
		if err := di.Link(a.host, guest); err != nil {
			appErr := apperrors.Configuration(err.Error()).WithCause(err)
			a.fail(ctx, appErr)
			return appErr
		}
	}

	// Step 3: resources. Definitions and descriptor are validated, and the
	// mount sequence rehearsed against a scratch engine, before anything
	// touches the real dispatch surface. A failing resource therefore
	// leaves the engine without any namespace routes.
	observability.SetSpanAttribute(ctx, observability.AttrBootstrapStep, "resources")
	resources := rest.Discover(a.cfg.Namespace)
	if len(resources) == 0 {
		a.log.Warn("No resources registered in namespace", map[string]interface{}{
			"namespace": a.cfg.Namespace,
		})
	}

	defs := rest.Definitions(a.cfg.Namespace)
	doc, err := openapi.Build(a.cfg.Descriptor, defs)
	if err != nil {
		appErr := apperrors.Configuration(err.Error()).WithCause(err)
		a.fail(ctx, appErr)
		return appErr
	}

	scratch := gin.New()
	if err := rest.MountAll(a.cfg.Namespace, scratch.Group(a.cfg.APIRoot), a.host); err != nil {
		appErr := apperrors.Discovery(a.cfg.Namespace, err.Error()).WithCause(err)
		a.fail(ctx, appErr)
		return appErr
	}

	publisher, err := openapi.NewPublisher(doc, a.cfg.Descriptor.PrettyPrint)
	if err != nil {
		appErr := apperrors.Configuration(err.Error()).WithCause(err)
		a.fail(ctx, appErr)
		return appErr
	}

	// Commit: from here on the wiring is applied to the real engine.
	feature := rest.JSONCodec(a.cfg.APIRoot)
	if err := feature.Apply(a.engine); err != nil {
		appErr := apperrors.Configuration(err.Error()).WithCause(err)
		a.fail(ctx, appErr)
		return appErr
	}

	group := a.engine.Group(a.cfg.APIRoot)
	if a.metrics != nil {
		group.Use(a.operationMetrics(defs))
	}
	if err := rest.MountAll(a.cfg.Namespace, group, a.host); err != nil {
		appErr := apperrors.Discovery(a.cfg.Namespace, err.Error()).WithCause(err)
		a.fail(ctx, appErr)
		return appErr
	}

	// Step 4: descriptor.
	observability.SetSpanAttribute(ctx, observability.AttrBootstrapStep, "descriptor")
	publisher.WithMetrics(a.metrics)
	publisher.Mount(group)

	a.publisher = publisher
	a.state = StateReady

	a.log.Info("Application bootstrapped", map[string]interface{}{
		"namespace":  a.cfg.Namespace,
		"api_root":   a.cfg.APIRoot,
		"resources":  len(resources),
		"operations": doc.OperationCount(),
	})
	return nil
}

// operationMetrics returns a group middleware that counts invocations of
// declared operations. The lookup is keyed by method and mounted route
// pattern, so only routes matching a declaration are recorded.
func (a *Application) operationMetrics(defs []rest.Definition) gin.HandlerFunc {
	type operation struct {
		resource    string
		operationID string
	}
	root := strings.TrimSuffix(a.cfg.APIRoot, "/")
	ops := make(map[string]operation)
	for _, def := range defs {
		for _, op := range def.Operations {
			key := strings.ToUpper(op.Method) + " " + root + def.RoutePath(op)
			ops[key] = operation{resource: def.Name, operationID: op.OperationID}
		}
	}

	return func(c *gin.Context) {
		c.Next()
		op, ok := ops[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}
		a.metrics.RecordOperation(c.Request.Context(), a.cfg.Namespace, op.resource, op.operationID)
	}
}

func (a *Application) fail(ctx context.Context, err error) {
	observability.SetSpanError(ctx, err)
	a.log.Error("Bootstrap failed", map[string]interface{}{
		"namespace": a.cfg.Namespace,
		"error":     err.Error(),
	})
}

// Close releases the host container. The linked guest container is owned by
// the lifecycle layer and is left untouched.
func (a *Application) Close() error {
	return a.host.Close()
}
