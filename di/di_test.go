package di

import (
	"strings"
	"testing"
)

func TestNewContainer(t *testing.T) {
	c := NewContainer()
	if c == nil {
		t.Fatal("expected non-nil container")
	}
}

func TestRegisterAndResolve(t *testing.T) {
	c := NewContainer()

	err := c.Register("greeting", func() string {
		return "hello"
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	val, err := c.Resolve("greeting")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if val != "hello" {
		t.Errorf("expected 'hello', got %v", val)
	}
}

func TestResolveNotRegistered(t *testing.T) {
	c := NewContainer()
	_, err := c.Resolve("nonexistent")
	if err == nil {
		t.Error("expected error for unregistered component")
	}
	if !strings.Contains(err.Error(), "not registered") {
		t.Errorf("expected 'not registered' in error, got %q", err.Error())
	}
}

func TestRegisterSingleton(t *testing.T) {
	c := NewContainer()
	instance := "singleton-value"

	if err := c.RegisterSingleton("single", instance); err != nil {
		t.Fatalf("RegisterSingleton failed: %v", err)
	}

	val, err := c.Resolve("single")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if val != instance {
		t.Errorf("expected %q, got %v", instance, val)
	}
}

func TestRegisterEager(t *testing.T) {
	c := NewContainer()
	called := false
	err := c.RegisterEager("eager", func() string {
		called = true
		return "eager-value"
	})
	if err != nil {
		t.Fatalf("RegisterEager failed: %v", err)
	}
	if !called {
		t.Error("expected constructor to be called immediately for eager registration")
	}

	val, err := c.Resolve("eager")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if val != "eager-value" {
		t.Errorf("expected 'eager-value', got %v", val)
	}
}

func TestRegisterEagerWithError(t *testing.T) {
	c := NewContainer()
	err := c.RegisterEager("bad", func() (string, error) {
		return "", &testErr{msg: "init failed"}
	})
	if err == nil {
		t.Error("expected error for failed eager initialization")
	}
}

func TestLazyInitializedOnce(t *testing.T) {
	c := NewContainer()
	count := 0
	c.RegisterLazy("lazy", func() int {
		count++
		return count
	}, WithRetryPolicy(&RetryPolicy{MaxAttempts: 1, InitialBackoffMs: 1, MaxBackoffMs: 1, BackoffMultiplier: 1}))

	first, err := c.Resolve("lazy")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := c.Resolve("lazy")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if first != second {
		t.Errorf("expected cached instance, got %v then %v", first, second)
	}
	if count != 1 {
		t.Errorf("expected single construction, got %d", count)
	}
}

func TestDIAwareConstructor(t *testing.T) {
	c := NewContainer()
	c.RegisterSingleton("dep", "dependency-value")
	c.Register("svc", func(cc Container) (string, error) {
		dep, err := cc.Resolve("dep")
		if err != nil {
			return "", err
		}
		return "svc+" + dep.(string), nil
	})

	val, err := c.Resolve("svc")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if val != "svc+dependency-value" {
		t.Errorf("unexpected value: %v", val)
	}
}

func TestTypedResolve(t *testing.T) {
	c := NewContainer()
	c.RegisterSingleton("num", 42)

	n, err := Resolve[int](c, "num")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if n != 42 {
		t.Errorf("expected 42, got %d", n)
	}

	if _, err := Resolve[string](c, "num"); err == nil {
		t.Error("expected type mismatch error")
	}

	if _, ok := TryResolve[int](c, "missing"); ok {
		t.Error("expected TryResolve to report false for missing key")
	}
}

func TestRegistrations(t *testing.T) {
	c := NewContainer()
	c.RegisterSingleton("a", 1)
	c.Register("b", func() int { return 2 })

	infos := c.Registrations()
	if len(infos) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(infos))
	}
}

type testErr struct{ msg string }

func (e *testErr) Error() string { return e.msg }
