package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/skillsenselab/restkit/observability"
)

const tracerName = "github.com/skillsenselab/restkit/server"

// Tracing returns a Gin middleware that starts a server span for each request,
// continuing any trace context propagated in the request headers.
func Tracing(serviceName string) gin.HandlerFunc {
	tracer := observability.Tracer(tracerName)
	return func(c *gin.Context) {
		propagator := otel.GetTextMapPropagator()
		ctx := propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String(observability.AttrServiceName, serviceName),
				attribute.String(observability.AttrHTTPMethod, c.Request.Method),
				attribute.String(observability.AttrHTTPRoute, route),
			),
		)
		defer span.End()

		if id, ok := c.Get("request_id"); ok {
			if rid, ok := id.(string); ok {
				span.SetAttributes(attribute.String(observability.AttrRequestID, rid))
			}
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int(observability.AttrHTTPStatus, status))
		if len(c.Errors) > 0 {
			span.RecordError(c.Errors.Last().Err)
		}
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
