package openapi

import (
	"fmt"

	"github.com/skillsenselab/restkit/validation"
	"github.com/skillsenselab/restkit/version"
)

// ServerEntry configures one server block of the descriptor.
type ServerEntry struct {
	URL         string `yaml:"url" mapstructure:"url" json:"url" validate:"required"`
	Description string `yaml:"description" mapstructure:"description" json:"description"`
}

// Config holds the static descriptor metadata. Everything except Title has a
// usable default; the title identifies the API and must be provided.
type Config struct {
	Title       string        `yaml:"title" mapstructure:"title" json:"title" validate:"required"`
	Version     string        `yaml:"version" mapstructure:"version" json:"version" validate:"required"`
	Description string        `yaml:"description" mapstructure:"description" json:"description"`
	ContactName string        `yaml:"contact_name" mapstructure:"contact_name" json:"contact_name"`
	ContactURL  string        `yaml:"contact_url" mapstructure:"contact_url" json:"contact_url" validate:"omitempty,url"`
	LicenseName string        `yaml:"license_name" mapstructure:"license_name" json:"license_name"`
	LicenseURL  string        `yaml:"license_url" mapstructure:"license_url" json:"license_url" validate:"omitempty,url"`
	Servers     []ServerEntry `yaml:"servers" mapstructure:"servers" json:"servers" validate:"dive"`
	// PrettyPrint toggles indented JSON output. It never changes the
	// semantic content of the descriptor.
	PrettyPrint bool `yaml:"pretty_print" mapstructure:"pretty_print" json:"pretty_print"`
}

// ApplyDefaults fills unset fields. The version defaults to the build
// version and the server list to the given API root.
func (c *Config) ApplyDefaults(apiRoot string) {
	if c.Version == "" {
		c.Version = version.GetShortVersion()
	}
	if len(c.Servers) == 0 && apiRoot != "" {
		c.Servers = []ServerEntry{{URL: apiRoot}}
	}
}

// Validate checks the static metadata. Invalid metadata is a configuration
// error and aborts bootstrap.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("openapi config: %w", err)
	}
	return nil
}
