package graph

import (
	"context"
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
	gqlotel "github.com/graph-gophers/graphql-go/trace/otel"
	gqltracer "github.com/graph-gophers/graphql-go/trace/tracer"

	"github.com/labtrack/labtrack/internal/metrics"
	"github.com/labtrack/labtrack/internal/services"
)

//go:embed schema.graphql
var schemaSDL string

// SDL returns the schema definition served by this package
func SDL() string {
	return schemaSDL
}

// Options configures the executable schema
type Options struct {
	RequireAuth bool
	MaxDepth    int
	Metrics     *metrics.Metrics
}

// NewSchema parses the schema and binds it to resolvers backed by svc
func NewSchema(svc *services.Services, opts Options) (*graphql.Schema, error) {
	schemaOpts := []graphql.SchemaOpt{
		graphql.Tracer(fieldTracer{Tracer: gqlotel.DefaultTracer(), metrics: opts.Metrics}),
	}
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxDepth(opts.MaxDepth))
	}
	return graphql.ParseSchema(schemaSDL, NewResolver(svc, opts.RequireAuth), schemaOpts...)
}

// fieldTracer traces with OpenTelemetry and counts root fields
type fieldTracer struct {
	*gqlotel.Tracer
	metrics *metrics.Metrics
}

func (t fieldTracer) TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, gqltracer.FieldFinishFunc) {
	if typeName == "Query" || typeName == "Mutation" {
		t.metrics.ObserveField(typeName, fieldName)
	}
	return t.Tracer.TraceField(ctx, label, typeName, fieldName, trivial, args)
}
