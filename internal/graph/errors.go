package graph

import (
	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	"github.com/labtrack/labtrack/internal/domain"
	"github.com/labtrack/labtrack/internal/logger"
	"github.com/labtrack/labtrack/internal/metrics"
)

const internalMessage = "internal server error"

// annotate adds a stable "code" extension to every error. Query syntax and
// validation errors have no resolver error and are reported as VALIDATION.
// Unexpected errors are logged and their message replaced.
func annotate(errs []*gqlerrors.QueryError, m *metrics.Metrics) {
	for _, qe := range errs {
		code := domain.Code(domain.ErrValidation)
		if qe.ResolverError != nil {
			code = domain.Code(qe.ResolverError)
		}
		if code == "INTERNAL" {
			logger.ErrorWithFields("graphql resolver failed", map[string]interface{}{
				"path":  qe.Path,
				"error": qe.ResolverError.Error(),
			})
			qe.Message = internalMessage
		}
		if qe.Extensions == nil {
			qe.Extensions = map[string]interface{}{}
		}
		qe.Extensions["code"] = code
		m.ObserveError(code)
	}
}
