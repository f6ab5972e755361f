package openapi

// Document is the published API descriptor. It is built once during
// application bootstrap and never mutated afterwards.
type Document struct {
	OpenAPI string              `json:"openapi" yaml:"openapi"`
	Info    Info                `json:"info" yaml:"info"`
	Servers []Server            `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags    []Tag               `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths   map[string]PathItem `json:"paths" yaml:"paths"`
}

// Info holds the descriptor's static metadata.
type Info struct {
	Title       string   `json:"title" yaml:"title"`
	Version     string   `json:"version" yaml:"version"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Contact     *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License     *License `json:"license,omitempty" yaml:"license,omitempty"`
}

// Contact identifies the API maintainer.
type Contact struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// License identifies the API license.
type License struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Server describes a base URL the API is served from.
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Tag groups operations in the descriptor.
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem maps lowercase HTTP methods to operations for one path.
type PathItem map[string]OperationObject

// OperationObject describes a single operation in the descriptor.
type OperationObject struct {
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	OperationID string              `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

// Response describes one response of an operation.
type Response struct {
	Description string `json:"description" yaml:"description"`
}
