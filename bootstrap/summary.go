package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skillsenselab/restkit/component"
	"github.com/skillsenselab/restkit/di"
)

// InfrastructureInfo holds detailed infrastructure component information.
type InfrastructureInfo struct {
	Name    string
	Type    string // e.g. "server", "api"
	Details string
	Port    int
}

// RouteInfo represents a registered HTTP route.
type RouteInfo struct {
	Method  string
	Path    string
	Handler string
}

// Summary tracks and displays the application bootstrap process.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
	infrastructure  []InfrastructureInfo
	routes          []RouteInfo
}

// NewSummary creates a new bootstrap summary tracker.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{
		serviceName: serviceName,
		version:     version,
	}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// TrackInfrastructure adds an infrastructure component with detailed metadata.
func (s *Summary) TrackInfrastructure(name, componentType, details string, port int) {
	s.infrastructure = append(s.infrastructure, InfrastructureInfo{
		Name:    name,
		Type:    componentType,
		Details: details,
		Port:    port,
	})
}

// TrackRoute records an HTTP route.
func (s *Summary) TrackRoute(method, path, handler string) {
	s.routes = append(s.routes, RouteInfo{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
}

// DisplaySummary prints the bootstrap summary. Infrastructure and routes are
// auto-collected from components implementing Describable and RouteProvider;
// container registrations and live health come from the registry.
func (s *Summary) DisplaySummary(registry *component.Registry, container di.Container) {
	s.collect(registry)

	fmt.Printf("\n")
	fmt.Printf("🚀 %s v%s started in %.2fs\n\n",
		s.serviceName, s.version, s.startupDuration.Seconds())

	if len(s.infrastructure) > 0 {
		fmt.Printf("📊 Infrastructure\n")
		for i, inf := range s.infrastructure {
			prefix := "├──"
			if i == len(s.infrastructure)-1 {
				prefix = "└──"
			}
			details := inf.Details
			if inf.Port > 0 {
				details = fmt.Sprintf("%s (:%d)", details, inf.Port)
			}
			fmt.Printf("   %s %s: %s\n", prefix, inf.Name, details)
		}
		fmt.Printf("\n")
	}

	if container != nil {
		regs := container.Registrations()
		if len(regs) > 0 {
			fmt.Printf("📦 Container (%d registrations)\n", len(regs))
			for i, r := range regs {
				prefix := "├──"
				if i == len(regs)-1 {
					prefix = "└──"
				}
				state := "pending"
				if r.Initialized {
					state = "initialized"
				}
				fmt.Printf("   %s %s [%s] (%s)\n", prefix, r.Key, r.Mode, state)
			}
			fmt.Printf("\n")
		}
	}

	if len(s.routes) > 0 {
		fmt.Printf("🌐 Routes (%d)\n", len(s.routes))
		for i, r := range s.routes {
			prefix := "├──"
			if i == len(s.routes)-1 {
				prefix = "└──"
			}
			fmt.Printf("   %s %-7s %s → %s\n", prefix, r.Method, r.Path, r.Handler)
		}
		fmt.Printf("\n")
	}

	if registry != nil {
		healthResults := registry.HealthAll(context.Background())
		if len(healthResults) > 0 {
			fmt.Printf("🏥 Health Check\n")
			for i, h := range healthResults {
				prefix := "├──"
				if i == len(healthResults)-1 {
					prefix = "└──"
				}
				icon := healthStatusIcon(h.Status)
				msg := ""
				if h.Message != "" {
					msg = fmt.Sprintf(" — %s", h.Message)
				}
				fmt.Printf("   %s %s %s: %s%s\n", prefix, icon, h.Name, strings.ToLower(string(h.Status)), msg)
			}
		}
	}

	fmt.Printf("\n")
}

// collect gathers infrastructure and route info from the registry's
// Describable and RouteProvider components. Manually tracked entries are
// kept; auto-collected ones are appended after them.
func (s *Summary) collect(registry *component.Registry) {
	if registry == nil {
		return
	}
	for _, c := range registry.All() {
		if d, ok := c.(component.Describable); ok {
			desc := d.Describe()
			name := desc.Name
			if name == "" {
				name = c.Name()
			}
			s.TrackInfrastructure(name, desc.Type, desc.Details, desc.Port)
		}
		if rp, ok := c.(component.RouteProvider); ok {
			for _, r := range rp.Routes() {
				s.TrackRoute(r.Method, r.Path, r.Handler)
			}
		}
	}
}

func healthStatusIcon(status component.HealthStatus) string {
	switch status {
	case component.StatusHealthy:
		return "✅"
	case component.StatusDegraded:
		return "⚠️"
	case component.StatusUnhealthy:
		return "❌"
	default:
		return "❓"
	}
}
