package bootstrap

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/skillsenselab/restkit/component"
	"github.com/skillsenselab/restkit/config"
	"github.com/skillsenselab/restkit/di"
	"github.com/skillsenselab/restkit/logger"
)

// testConfig is a minimal config satisfying the Config interface.
type testConfig struct {
	config.ServiceConfig
}

// mockComponent implements component.Component for testing.
type mockComponent struct {
	name     string
	startErr error
	stopErr  error
	health   component.Health
	started  bool
	stopped  bool
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	m.started = true
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	m.stopped = true
	return m.stopErr
}
func (m *mockComponent) Health(ctx context.Context) component.Health {
	return m.health
}

func newTestConfig(name, version string) *testConfig {
	return &testConfig{
		ServiceConfig: config.ServiceConfig{
			Name:        name,
			Version:     version,
			Environment: "development",
		},
	}
}

func healthyComponent(name string) *mockComponent {
	return &mockComponent{
		name:   name,
		health: component.Health{Name: name, Status: component.StatusHealthy},
	}
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(newTestConfig("test-svc", "1.0.0"))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Name != "test-svc" {
		t.Errorf("expected name 'test-svc', got %q", app.Name)
	}
	if app.Version != "1.0.0" {
		t.Errorf("expected version '1.0.0', got %q", app.Version)
	}
	if app.Container == nil {
		t.Error("expected non-nil container")
	}
	if app.Components == nil {
		t.Error("expected non-nil components registry")
	}
	if app.Logger == nil {
		t.Error("expected non-nil logger")
	}
	if app.Cfg.Name != "test-svc" {
		t.Errorf("expected cfg.Name 'test-svc', got %q", app.Cfg.Name)
	}
}

func TestNewAppPublishesContainerAttribute(t *testing.T) {
	app, err := NewApp(newTestConfig("test-svc", "1.0.0"))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	c, ok := app.Attributes.Container()
	if !ok {
		t.Fatal("expected container in attribute store")
	}
	if c != app.Container {
		t.Error("attribute store must hold the app's own container")
	}
}

func TestNewAppValidation(t *testing.T) {
	cfg := &testConfig{
		ServiceConfig: config.ServiceConfig{
			// Name is empty — should fail validation
			Environment: "development",
		},
	}
	if _, err := NewApp(cfg); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestNewAppWithOptions(t *testing.T) {
	container := di.NewContainer()
	app, err := NewApp(newTestConfig("test", "1.0"),
		WithGracefulTimeout(30*time.Second),
		WithContainer(container),
		WithLogger(logger.NewDefault("custom")),
	)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	if app.Container != container {
		t.Error("expected custom container")
	}
	if app.gracefulTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", app.gracefulTimeout)
	}

	// The attribute store reflects the custom container.
	if c, _ := app.Attributes.Container(); c != container {
		t.Error("attribute store must hold the custom container")
	}
}

func TestRegisterComponent(t *testing.T) {
	app, _ := NewApp(newTestConfig("test", "1.0"))

	if err := app.RegisterComponent(healthyComponent("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := app.RegisterComponent(healthyComponent("a")); err == nil {
		t.Error("expected error for duplicate component")
	}
}

func TestHooksRunInOrder(t *testing.T) {
	app, _ := NewApp(newTestConfig("test", "1.0"))

	var order []string
	app.OnStart(func(ctx context.Context) error {
		order = append(order, "start")
		return nil
	})
	app.OnReady(func(ctx context.Context) error {
		order = append(order, "ready")
		return nil
	})
	app.OnStop(func(ctx context.Context) error {
		order = append(order, "stop")
		return nil
	})
	app.OnConfigure(func(ctx context.Context, a *App[*testConfig]) error {
		order = append(order, "configure")
		return nil
	})

	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		order = append(order, "task")
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask failed: %v", err)
	}

	want := []string{"start", "configure", "ready", "task", "stop"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestHookErrorStopsStartup(t *testing.T) {
	app, _ := NewApp(newTestConfig("test", "1.0"))
	app.OnStart(func(ctx context.Context) error {
		return fmt.Errorf("boom")
	})

	ran := false
	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error from failing hook")
	}
	if ran {
		t.Error("task must not run when startup fails")
	}
}

func TestReadyCheck(t *testing.T) {
	app, _ := NewApp(newTestConfig("test", "1.0"))
	_ = app.RegisterComponent(healthyComponent("ok"))

	if err := app.ReadyCheck(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_ = app.RegisterComponent(&mockComponent{
		name:   "bad",
		health: component.Health{Name: "bad", Status: component.StatusUnhealthy, Message: "broken"},
	})
	if err := app.ReadyCheck(context.Background()); err == nil {
		t.Error("expected error for unhealthy component")
	}
}

func TestRunTaskStartsAndStopsComponents(t *testing.T) {
	app, _ := NewApp(newTestConfig("test", "1.0"))
	a := healthyComponent("a")
	b := healthyComponent("b")
	_ = app.RegisterComponent(a)
	_ = app.RegisterComponent(b)

	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		if !a.started || !b.started {
			t.Error("components must be started before the task runs")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunTask failed: %v", err)
	}
	if !a.stopped || !b.stopped {
		t.Error("components must be stopped after the task")
	}
}

func TestRunTaskComponentStartError(t *testing.T) {
	app, _ := NewApp(newTestConfig("test", "1.0"))
	_ = app.RegisterComponent(&mockComponent{
		name:     "bad",
		startErr: fmt.Errorf("refused"),
		health:   component.Health{Name: "bad", Status: component.StatusUnhealthy},
	})

	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		t.Error("task must not run")
		return nil
	})
	if err == nil {
		t.Fatal("expected error from failing component")
	}
}

func TestRunTaskReturnsTaskError(t *testing.T) {
	app, _ := NewApp(newTestConfig("test", "1.0"))

	taskErr := fmt.Errorf("task failed")
	err := app.RunTask(context.Background(), func(ctx context.Context) error {
		return taskErr
	})
	if err != taskErr {
		t.Fatalf("expected task error, got %v", err)
	}
}

func TestShutdown(t *testing.T) {
	app, _ := NewApp(newTestConfig("test", "1.0"))

	var stops []string
	a, b := healthyComponent("a"), healthyComponent("b")
	_ = app.RegisterComponent(a)
	_ = app.RegisterComponent(b)

	app.OnStop(func(ctx context.Context) error {
		stops = append(stops, "hook")
		return nil
	})

	if err := app.Components.StartAll(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := app.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if len(stops) != 1 || stops[0] != "hook" {
		t.Errorf("expected stop hook to run, got %v", stops)
	}
	if !a.stopped || !b.stopped {
		t.Error("expected all components stopped")
	}
}

func TestWaitForSignalContextCancellation(t *testing.T) {
	app, _ := NewApp(newTestConfig("test", "1.0"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.WaitForSignal(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("WaitForSignal did not return on context cancellation")
	}
}

func TestSummaryTracking(t *testing.T) {
	s := NewSummary("svc", "1.0")
	s.SetStartupDuration(1500 * time.Millisecond)
	s.TrackInfrastructure("HTTP Server", "server", "0.0.0.0:8080", 8080)
	s.TrackRoute("GET", "/api/users", "UserResource.List")

	if len(s.infrastructure) != 1 {
		t.Errorf("expected 1 infrastructure entry, got %d", len(s.infrastructure))
	}
	if len(s.routes) != 1 {
		t.Errorf("expected 1 route, got %d", len(s.routes))
	}
	if s.startupDuration != 1500*time.Millisecond {
		t.Errorf("unexpected duration: %v", s.startupDuration)
	}
}

func TestSummaryDisplayDoesNotPanic(t *testing.T) {
	s := NewSummary("svc", "1.0")
	s.DisplaySummary(nil, nil)

	registry := component.NewRegistry()
	_ = registry.Register(healthyComponent("a"))
	container := di.NewContainer()
	_ = container.RegisterSingleton("cfg", struct{}{})
	s.DisplaySummary(registry, container)
}

func TestHealthStatusIcon(t *testing.T) {
	if healthStatusIcon(component.StatusHealthy) != "✅" {
		t.Error("unexpected icon for healthy")
	}
	if healthStatusIcon(component.StatusUnhealthy) != "❌" {
		t.Error("unexpected icon for unhealthy")
	}
	if healthStatusIcon(component.StatusDegraded) != "⚠️" {
		t.Error("unexpected icon for degraded")
	}
}
