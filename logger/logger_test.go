package logger

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Level: "verbose", Format: "json", Output: "stdout"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = &Config{Level: "debug", Format: "xml", Output: "stdout"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}

	cfg = &Config{Level: "debug", Format: "json", Output: "stdout"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{Level: "debug", Format: "json", Output: "stdout"}
	l := New(cfg, "test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("svc")
	cl := l.WithComponent("bridge")
	if cl == nil {
		t.Fatal("expected non-nil component logger")
	}
	if cl == l {
		t.Error("expected a new logger instance")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	l := Get("never-registered")
	if l == nil {
		t.Fatal("expected fallback logger for unregistered name")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	l := NewDefault("svc").WithComponent("registry-test")
	Register("registry-test", l)
	if got := Get("registry-test"); got != l {
		t.Error("expected registered logger instance")
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "mount", "path", "/api")
	if m["op"] != "mount" || m["path"] != "/api" {
		t.Errorf("unexpected fields map: %v", m)
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields("op", "mount", "dangling")
	if len(m) != 1 {
		t.Errorf("expected dangling key to be dropped, got %v", m)
	}
}

func TestLevelWriter(t *testing.T) {
	var buf strings.Builder
	zl := zerolog.New(&buf)
	w := &levelWriter{logger: zl, level: zerolog.WarnLevel}

	n, err := w.Write([]byte("engine warning\n"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != len("engine warning\n") {
		t.Errorf("expected full write, got %d", n)
	}
	out := buf.String()
	if !strings.Contains(out, "engine warning") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level in output, got %q", out)
	}
}

func TestLevelWriterSkipsEmptyLines(t *testing.T) {
	var buf strings.Builder
	zl := zerolog.New(&buf)
	w := &levelWriter{logger: zl, level: zerolog.InfoLevel}

	if _, err := w.Write([]byte("\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for blank line, got %q", buf.String())
	}
}
