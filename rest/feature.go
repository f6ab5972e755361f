package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/restkit/errors"
)

// Feature customizes the engine during application bootstrap, before any
// resource is mounted.
type Feature interface {
	Name() string
	Apply(engine *gin.Engine) error
}

// JSONCodec returns the standard JSON codec feature: strict request decoding
// (unknown fields rejected) and a content-type guard on body-carrying
// methods under the API root.
func JSONCodec(apiRoot string) Feature {
	return &jsonCodec{apiRoot: apiRoot}
}

type jsonCodec struct {
	apiRoot string
}

func (f *jsonCodec) Name() string { return "json-codec" }

func (f *jsonCodec) Apply(engine *gin.Engine) error {
	// Make gin's own binding strict as well, so c.ShouldBindJSON matches
	// DecodeJSON behavior.
	gin.EnableJsonDecoderDisallowUnknownFields()

	engine.Use(func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, f.apiRoot) {
			c.Next()
			return
		}
		if !methodCarriesBody(c.Request.Method) || c.Request.ContentLength == 0 {
			c.Next()
			return
		}
		ct := c.ContentType()
		if ct != "" && ct != "application/json" {
			err := apperrors.Validation("request body must be application/json").
				WithDetail("content_type", ct)
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, err.ToResponse())
			return
		}
		c.Next()
	})
	return nil
}

func methodCarriesBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// DecodeJSON strictly decodes the request body into v. Unknown fields and
// trailing data are rejected with a validation error.
func DecodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Validation("invalid JSON request body").WithCause(err)
	}
	// Reject trailing garbage after the JSON document.
	if dec.More() {
		return apperrors.Validation("unexpected data after JSON document")
	}
	return nil
}

// BindJSON strictly decodes the request body of c into v, aborting with a
// 400 response on failure. Returns false if decoding failed.
func BindJSON(c *gin.Context, v any) bool {
	if err := DecodeJSON(c.Request.Body, v); err != nil {
		appErr, _ := apperrors.AsAppError(err)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
		return false
	}
	return true
}
