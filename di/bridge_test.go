package di

import (
	"errors"
	"testing"
)

type closableService struct{ closed bool }

func (s *closableService) Close() error {
	s.closed = true
	return nil
}

func TestLinkForwardsResolution(t *testing.T) {
	guest := NewContainer()
	svc := &closableService{}
	guest.RegisterSingleton("service", svc)
	guest.Register("lazy_name", func() string { return "guest-lazy" })

	host := NewContainer()
	if err := Link(host, guest); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	got, err := host.Resolve("service")
	if err != nil {
		t.Fatalf("Resolve through bridge failed: %v", err)
	}
	if got != svc {
		t.Error("expected the exact guest instance through the bridge")
	}

	lazy, err := host.Resolve("lazy_name")
	if err != nil {
		t.Fatalf("Resolve of lazy guest component failed: %v", err)
	}
	if lazy != "guest-lazy" {
		t.Errorf("unexpected value: %v", lazy)
	}
}

func TestLinkEveryGuestKeyResolvable(t *testing.T) {
	guest := NewContainer()
	keys := []string{"alpha", "beta", "gamma"}
	for _, k := range keys {
		guest.RegisterSingleton(k, "value-"+k)
	}

	host := NewContainer()
	if err := Link(host, guest); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	for _, k := range keys {
		v, err := host.Resolve(k)
		if err != nil {
			t.Fatalf("key %q not resolvable through host: %v", k, err)
		}
		if v != "value-"+k {
			t.Errorf("key %q: expected %q, got %v", k, "value-"+k, v)
		}
	}
}

func TestHostRegistrationShadowsGuest(t *testing.T) {
	guest := NewContainer()
	guest.RegisterSingleton("shared", "from-guest")

	host := NewContainer()
	host.RegisterSingleton("shared", "from-host")
	if err := Link(host, guest); err != nil {
		t.Fatalf("Link failed: %v", err)
	}

	v, err := host.Resolve("shared")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if v != "from-host" {
		t.Errorf("host registration must win, got %v", v)
	}
}

func TestLinkTwiceRejected(t *testing.T) {
	guest := NewContainer()
	host := NewContainer()

	if err := Link(host, guest); err != nil {
		t.Fatalf("first Link failed: %v", err)
	}
	err := Link(host, guest)
	if !errors.Is(err, ErrAlreadyLinked) {
		t.Errorf("expected ErrAlreadyLinked, got %v", err)
	}

	// A different guest is rejected the same way.
	err = Link(host, NewContainer())
	if !errors.Is(err, ErrAlreadyLinked) {
		t.Errorf("expected ErrAlreadyLinked for second guest, got %v", err)
	}
}

func TestLinkNilGuest(t *testing.T) {
	host := NewContainer()
	if err := Link(host, nil); !errors.Is(err, ErrNilGuest) {
		t.Errorf("expected ErrNilGuest, got %v", err)
	}
}

func TestLinked(t *testing.T) {
	host := NewContainer()
	if Linked(host) {
		t.Error("fresh container must not report linked")
	}
	if err := Link(host, NewContainer()); err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	if !Linked(host) {
		t.Error("expected linked host")
	}
}

func TestHostCloseDoesNotCloseGuest(t *testing.T) {
	guest := NewContainer()
	svc := &closableService{}
	guest.RegisterSingleton("service", svc)

	host := NewContainer()
	if err := Link(host, guest); err != nil {
		t.Fatalf("Link failed: %v", err)
	}
	if _, err := host.Resolve("service"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if err := host.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if svc.closed {
		t.Error("closing the host must not close guest-owned instances")
	}
}
