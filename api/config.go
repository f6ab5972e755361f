package api

import (
	"fmt"
	"strings"

	"github.com/skillsenselab/restkit/openapi"
)

// Config holds the composition root's configuration. Namespace selects which
// registered resources this application serves; by construction the same
// namespace feeds the published API descriptor.
type Config struct {
	// Namespace is the resource registry namespace this application mounts
	// and describes.
	Namespace string `yaml:"namespace" mapstructure:"namespace"`
	// APIRoot is the URL prefix all resources and the descriptor are
	// mounted under.
	APIRoot string `yaml:"api_root" mapstructure:"api_root"`
	// Descriptor holds the static descriptor metadata.
	Descriptor openapi.Config `yaml:"descriptor" mapstructure:"descriptor"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.APIRoot == "" {
		c.APIRoot = "/api"
	}
	c.Descriptor.ApplyDefaults(c.APIRoot)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Namespace == "" {
		return fmt.Errorf("api.namespace must not be empty")
	}
	if !strings.HasPrefix(c.APIRoot, "/") {
		return fmt.Errorf("api.api_root must start with / (got: %q)", c.APIRoot)
	}
	return c.Descriptor.Validate()
}
