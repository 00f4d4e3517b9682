package graph

import (
	"encoding/json"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/rs/cors"

	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/logger"
	"github.com/labtrack/labtrack/internal/metrics"
)

const defaultMaxBodyBytes = 1 << 20

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GraphQL requests posted as JSON
type Handler struct {
	Schema       *graphql.Schema
	Metrics      *metrics.Metrics
	MaxBodyBytes int64
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}

	var params request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp := h.Schema.Exec(r.Context(), params.Query, params.OperationName, params.Variables)
	annotate(resp.Errors, h.Metrics)

	body, err := json.Marshal(resp)
	if err != nil {
		logger.Errorf("encode graphql response: %v", err)
		http.Error(w, internalMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// HandlerOptions configures NewHandler
type HandlerOptions struct {
	Verifier     auth.Verifier
	CORSOrigins  []string
	Metrics      *metrics.Metrics
	MaxBodyBytes int64
}

// NewHandler wraps the schema with CORS and bearer token handling. Without a
// verifier every request is anonymous.
func NewHandler(schema *graphql.Schema, opts HandlerOptions) http.Handler {
	var h http.Handler = &Handler{Schema: schema, Metrics: opts.Metrics, MaxBodyBytes: opts.MaxBodyBytes}
	if opts.Verifier != nil {
		h = auth.Middleware(opts.Verifier)(h)
	}
	return cors.New(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(h)
}
