package endpoint_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/restkit/component"
	"github.com/skillsenselab/restkit/server/endpoint"
)

func performGet(t *testing.T, handler gin.HandlerFunc, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET(path, handler)

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", path, http.NoBody))

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return rr, body
}

func TestHealth_NoChecker(t *testing.T) {
	rr, body := performGet(t, endpoint.Health("test-service", nil), "/health")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected healthy, got %v", body["status"])
	}
	if body["service"] != "test-service" {
		t.Errorf("expected service name, got %v", body["service"])
	}
}

func TestHealth_UnhealthyComponent(t *testing.T) {
	checker := func(_ context.Context) []component.Health {
		return []component.Health{
			{Name: "api", Status: component.StatusHealthy},
			{Name: "server", Status: component.StatusUnhealthy, Message: "down"},
		}
	}

	rr, body := performGet(t, endpoint.Health("test-service", checker), "/health")

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if body["status"] != "unhealthy" {
		t.Errorf("expected unhealthy, got %v", body["status"])
	}
}

func TestHealth_DegradedComponent(t *testing.T) {
	checker := func(_ context.Context) []component.Health {
		return []component.Health{
			{Name: "api", Status: component.StatusDegraded},
		}
	}

	rr, body := performGet(t, endpoint.Health("test-service", checker), "/health")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for degraded, got %d", rr.Code)
	}
	if body["status"] != "degraded" {
		t.Errorf("expected degraded, got %v", body["status"])
	}
}

func TestReadiness_NotReady(t *testing.T) {
	checker := func(_ context.Context) []component.Health {
		return []component.Health{
			{Name: "api", Status: component.StatusUnhealthy},
		}
	}

	rr, body := performGet(t, endpoint.Readiness("test-service", checker), "/ready")

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if body["status"] != "not_ready" {
		t.Errorf("expected not_ready, got %v", body["status"])
	}
}

func TestLiveness(t *testing.T) {
	rr, body := performGet(t, endpoint.Liveness("test-service"), "/alive")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body["status"] != "alive" {
		t.Errorf("expected alive, got %v", body["status"])
	}
}

func TestInfo(t *testing.T) {
	rr, body := performGet(t, endpoint.Info("test-service"), "/info")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body["service"] != "test-service" {
		t.Errorf("expected service name, got %v", body["service"])
	}
	if _, ok := body["version"]; !ok {
		t.Error("expected version field")
	}
}

func TestVersion(t *testing.T) {
	rr, body := performGet(t, endpoint.Version(), "/version")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if _, ok := body["go_version"]; !ok {
		t.Error("expected go_version field")
	}
}

func TestMetrics(t *testing.T) {
	rr, body := performGet(t, endpoint.Metrics(), "/metrics")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if _, ok := body["goroutines"]; !ok {
		t.Error("expected goroutines field")
	}
}
