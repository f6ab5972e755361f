package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConfigurationError(t *testing.T) {
	err := Configuration("application container missing from context attributes")
	if err.Code != ErrCodeConfiguration {
		t.Errorf("expected CONFIGURATION_ERROR, got %s", err.Code)
	}
	if err.Retryable {
		t.Error("configuration errors must not be retryable")
	}
	if !IsConfiguration(err) {
		t.Error("IsConfiguration should report true")
	}
	if IsDiscovery(err) {
		t.Error("IsDiscovery should report false for a configuration error")
	}
}

func TestDiscoveryError(t *testing.T) {
	err := Discovery("/api", "namespace unreadable")
	if err.Code != ErrCodeDiscovery {
		t.Errorf("expected DISCOVERY_ERROR, got %s", err.Code)
	}
	if err.Details["namespace"] != "/api" {
		t.Errorf("expected namespace detail, got %v", err.Details)
	}
	if !IsDiscovery(err) {
		t.Error("IsDiscovery should report true")
	}
}

func TestConfigurationErrorWrapped(t *testing.T) {
	inner := Configuration("duplicate bridge link")
	wrapped := fmt.Errorf("bootstrap: %w", inner)
	if !IsConfiguration(wrapped) {
		t.Error("IsConfiguration should see through wrapping")
	}
	appErr, ok := AsAppError(wrapped)
	if !ok || appErr.Code != ErrCodeConfiguration {
		t.Errorf("AsAppError failed on wrapped error: %v %v", appErr, ok)
	}
}

func TestErrorString(t *testing.T) {
	err := New(ErrCodeNotFound, "missing", http.StatusNotFound)
	if err.Error() != "NOT_FOUND: missing" {
		t.Errorf("unexpected error string: %q", err.Error())
	}

	withCause := Internal(errors.New("boom"))
	if withCause.Unwrap() == nil {
		t.Error("expected unwrappable cause")
	}
}

func TestRetryableDetection(t *testing.T) {
	if !IsRetryableCode(ErrCodeServiceUnavailable) {
		t.Error("SERVICE_UNAVAILABLE should be retryable")
	}
	if IsRetryableCode(ErrCodeConfiguration) {
		t.Error("CONFIGURATION_ERROR must not be retryable")
	}
	if IsRetryableCode(ErrCodeDiscovery) {
		t.Error("DISCOVERY_ERROR must not be retryable")
	}
}

func TestToResponse(t *testing.T) {
	err := NotFound("session", "42")
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", resp.Error.Code)
	}
	if resp.Error.Details["id"] != "42" {
		t.Errorf("expected id detail, got %v", resp.Error.Details)
	}
}

func TestWithDetail(t *testing.T) {
	err := Conflict("state moved").WithDetail("expected", "v1")
	if err.Details["expected"] != "v1" {
		t.Errorf("expected detail to be set, got %v", err.Details)
	}
}
