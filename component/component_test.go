package component

import (
	"context"
	"fmt"
	"testing"
)

// mockComponent implements Component for testing.
type mockComponent struct {
	name       string
	startErr   error
	stopErr    error
	health     Health
	startOrder *[]string
	stopOrder  *[]string
}

func (m *mockComponent) Name() string { return m.name }
func (m *mockComponent) Start(ctx context.Context) error {
	if m.startOrder != nil {
		*m.startOrder = append(*m.startOrder, m.name)
	}
	return m.startErr
}
func (m *mockComponent) Stop(ctx context.Context) error {
	if m.stopOrder != nil {
		*m.stopOrder = append(*m.stopOrder, m.name)
	}
	return m.stopErr
}
func (m *mockComponent) Health(ctx context.Context) Health {
	return m.health
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "api"})

	err := r.Register(&mockComponent{name: "api"})
	if err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "api"})

	got := r.Get("api")
	if got == nil {
		t.Fatal("expected to get registered component")
	}
	if got.Name() != "api" {
		t.Errorf("expected 'api', got %q", got.Name())
	}
	if r.Get("missing") != nil {
		t.Error("expected nil for unregistered component")
	}
}

func TestStartAllOrder(t *testing.T) {
	r := NewRegistry()
	order := []string{}

	r.Register(&mockComponent{name: "api", startOrder: &order, health: Health{Name: "api", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "http-server", startOrder: &order, health: Health{Name: "http-server", Status: StatusHealthy}})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if len(order) != 2 || order[0] != "api" || order[1] != "http-server" {
		t.Errorf("expected start order [api, http-server], got %v", order)
	}
}

func TestStartAllError(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "api", startErr: fmt.Errorf("bootstrap failed")})

	if err := r.StartAll(context.Background()); err == nil {
		t.Error("expected error from StartAll")
	}
}

func TestStopAllReverseOrder(t *testing.T) {
	r := NewRegistry()
	order := []string{}

	r.Register(&mockComponent{name: "api", stopOrder: &order, health: Health{Name: "api", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "http-server", stopOrder: &order, health: Health{Name: "http-server", Status: StatusHealthy}})

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(order) != 2 || order[0] != "http-server" || order[1] != "api" {
		t.Errorf("expected stop order [http-server, api], got %v", order)
	}
}

func TestStopSkipsUnstarted(t *testing.T) {
	r := NewRegistry()
	order := []string{}
	r.Register(&mockComponent{name: "api", stopOrder: &order})

	// StopAll without StartAll should not call Stop.
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}
	if len(order) != 0 {
		t.Errorf("expected no stops, got %v", order)
	}
}

func TestHealthAll(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockComponent{name: "api", health: Health{Name: "api", Status: StatusHealthy}})
	r.Register(&mockComponent{name: "http-server", health: Health{Name: "http-server", Status: StatusDegraded, Message: "draining"}})

	results := r.HealthAll(context.Background())
	if len(results) != 2 {
		t.Fatalf("expected 2 health results, got %d", len(results))
	}
	if results[1].Status != StatusDegraded {
		t.Errorf("expected degraded status, got %s", results[1].Status)
	}
}
