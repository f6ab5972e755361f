package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/skillsenselab/restkit/observability"
)

// Publisher serves an immutable Document in JSON and YAML form. Both
// serializations are rendered once at construction time.
type Publisher struct {
	doc       *Document
	jsonBytes []byte
	yamlBytes []byte
	metrics   *observability.Metrics
}

// NewPublisher renders the document. When pretty is set the JSON form is
// indented; the YAML form is always block-style.
func NewPublisher(doc *Document, pretty bool) (*Publisher, error) {
	var (
		jsonBytes []byte
		err       error
	)
	if pretty {
		jsonBytes, err = json.MarshalIndent(doc, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("openapi: rendering JSON descriptor: %w", err)
	}

	yamlBytes, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: rendering YAML descriptor: %w", err)
	}

	return &Publisher{doc: doc, jsonBytes: jsonBytes, yamlBytes: yamlBytes}, nil
}

// WithMetrics enables descriptor-fetch counting.
func (p *Publisher) WithMetrics(m *observability.Metrics) *Publisher {
	p.metrics = m
	return p
}

// Document returns the published document.
func (p *Publisher) Document() *Document { return p.doc }

// Mount registers the descriptor endpoints on the router:
// GET openapi.json and GET openapi.yaml relative to it.
func (p *Publisher) Mount(r gin.IRouter) {
	r.GET("/openapi.json", func(c *gin.Context) {
		if p.metrics != nil {
			p.metrics.RecordDescriptorFetch(c.Request.Context(), "json")
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", p.jsonBytes)
	})
	r.GET("/openapi.yaml", func(c *gin.Context) {
		if p.metrics != nil {
			p.metrics.RecordDescriptorFetch(c.Request.Context(), "yaml")
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", p.yamlBytes)
	})
}
