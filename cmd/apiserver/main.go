// Command apiserver is a demo REST server showing the full restkit flow:
// the lifecycle layer builds the application container and publishes it to
// the attribute store, the api.Application bridges it into the dispatch
// layer, mounts the namespace's resources, and publishes the descriptor.
package main

import (
	"context"
	"os"

	"github.com/skillsenselab/restkit/api"
	"github.com/skillsenselab/restkit/bootstrap"
	"github.com/skillsenselab/restkit/config"
	"github.com/skillsenselab/restkit/di"
	"github.com/skillsenselab/restkit/logger"
	"github.com/skillsenselab/restkit/observability"
	"github.com/skillsenselab/restkit/server"
)

const namespace = "apiserver"

type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server server.Config `yaml:"server" mapstructure:"server"`
	API    api.Config    `yaml:"api" mapstructure:"api"`
}

func (c *appConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
	if c.API.Namespace == "" {
		c.API.Namespace = namespace
	}
	if c.API.Descriptor.Title == "" {
		c.API.Descriptor.Title = c.Name
	}
	c.API.ApplyDefaults()
}

func (c *appConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.API.Validate()
}

func main() {
	cfg := &appConfig{}
	if err := config.LoadConfig("apiserver", cfg); err != nil {
		logger.Fatal("Failed to load configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		logger.Fatal("Failed to create application", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Application container: services the REST resources resolve through
	// the container bridge.
	if err := registerServices(app.Container, cfg); err != nil {
		app.Logger.Fatal("Failed to register services", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Instruments record against the global meter provider: no-ops until an
	// OTLP meter is installed via observability.InitMeter.
	metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
	if err != nil {
		app.Logger.Fatal("Failed to create metrics", map[string]interface{}{
			"error": err.Error(),
		})
	}

	srv := server.New(cfg.Server, cfg.Name, app.Logger).WithMetrics(metrics)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(app.Components.HealthAll)

	restApp, err := api.New(cfg.API, srv.GinEngine(), app.Attributes, app.Logger)
	if err != nil {
		app.Logger.Fatal("Failed to create API application", map[string]interface{}{
			"error": err.Error(),
		})
	}
	restApp.WithMetrics(metrics)

	// The API application must wire before the server accepts traffic.
	if err := app.RegisterComponent(api.NewComponent(restApp)); err != nil {
		app.Logger.Fatal("Failed to register API component", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := app.RegisterComponent(server.NewComponent(srv)); err != nil {
		app.Logger.Fatal("Failed to register server component", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := app.Run(context.Background()); err != nil {
		app.Logger.Error("Application exited with error", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}

// registerServices populates the application container.
func registerServices(c di.Container, cfg *appConfig) error {
	if err := c.RegisterSingleton(di.App.Config, cfg); err != nil {
		return err
	}
	if err := c.RegisterSingleton(sessionStoreKey, newSessionStore()); err != nil {
		return err
	}
	return nil
}
