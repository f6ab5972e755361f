package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestServiceConfigDefaults(t *testing.T) {
	cfg := &ServiceConfig{Name: "svc"}
	cfg.ApplyDefaults()

	if cfg.Environment != "development" {
		t.Errorf("expected development environment, got %q", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("expected debug enabled in development")
	}
	if cfg.Logging.ServiceName != "svc" {
		t.Errorf("expected logging service name propagated, got %q", cfg.Logging.ServiceName)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default logging level, got %q", cfg.Logging.Level)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	cfg := &ServiceConfig{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing name")
	}

	cfg = &ServiceConfig{Name: "svc", Environment: "qa"}
	cfg.Logging.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid environment")
	}

	cfg = &ServiceConfig{Name: "svc"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	APIRoot       string `yaml:"api_root" mapstructure:"api_root"`
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("name: test-svc\nversion: 1.2.3\napi_root: /api\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg testConfig
	if err := LoadConfig("test-svc", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "test-svc" {
		t.Errorf("expected name 'test-svc', got %q", cfg.Name)
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("expected version '1.2.3', got %q", cfg.Version)
	}
	if cfg.APIRoot != "/api" {
		t.Errorf("expected api_root '/api', got %q", cfg.APIRoot)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("name: file-name\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("NAME", "env-name")

	var cfg testConfig
	if err := LoadConfig("test-svc", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "env-name" {
		t.Errorf("expected env override 'env-name', got %q", cfg.Name)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("API_SERVER_PORT")
	want := map[string]bool{
		"api_server_port": false,
		"api.server.port": false,
		"api.server_port": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("expected variant %q in %v", k, variants)
		}
	}
}
