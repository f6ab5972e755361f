package api

import (
	"context"
	"fmt"

	"github.com/skillsenselab/restkit/component"
)

const componentName = "api-application"

var _ component.Component = (*ApplicationComponent)(nil)
var _ component.Describable = (*ApplicationComponent)(nil)

// ApplicationComponent wraps Application to implement component.Component,
// so the composition root participates in the process lifecycle registry.
// Register it before the HTTP server component: components start in
// registration order, so wiring completes before traffic is accepted.
type ApplicationComponent struct {
	app *Application
}

// NewComponent returns a component.Component backed by the given Application.
func NewComponent(app *Application) *ApplicationComponent {
	return &ApplicationComponent{app: app}
}

// Application returns the wrapped application.
func (ac *ApplicationComponent) Application() *Application { return ac.app }

// Name returns the component name used for registration.
func (ac *ApplicationComponent) Name() string { return componentName }

// Start runs the bootstrap sequence.
func (ac *ApplicationComponent) Start(ctx context.Context) error {
	return ac.app.Bootstrap(ctx)
}

// Stop releases the host container.
func (ac *ApplicationComponent) Stop(ctx context.Context) error {
	return ac.app.Close()
}

// Health reports ready/unready based on the bootstrap state.
func (ac *ApplicationComponent) Health(ctx context.Context) component.Health {
	if ac.app.Ready() {
		return component.Health{
			Name:   componentName,
			Status: component.StatusHealthy,
		}
	}
	return component.Health{
		Name:    componentName,
		Status:  component.StatusUnhealthy,
		Message: "application not bootstrapped",
	}
}

// Describe returns summary info for the bootstrap display.
func (ac *ApplicationComponent) Describe() component.Description {
	return component.Description{
		Name:    "API Application",
		Type:    "api",
		Details: fmt.Sprintf("namespace=%s root=%s", ac.app.cfg.Namespace, ac.app.cfg.APIRoot),
	}
}
