package graph

import (
	"context"
	"encoding/json"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/suite"

	"github.com/labtrack/labtrack/internal/auth"
	"github.com/labtrack/labtrack/internal/db/dbtest"
	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/internal/metrics"
	"github.com/labtrack/labtrack/internal/services"
)

var testNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// GraphTestSuite executes operations against a schema backed by sqlite
type GraphTestSuite struct {
	suite.Suite
	ctx     context.Context
	svc     *services.Services
	issuer  *auth.Issuer
	metrics *metrics.Metrics
	schema  *graphql.Schema
}

func (s *GraphTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.issuer = auth.NewIssuer("test-secret", "labtrack", time.Hour)
	s.svc = services.New(dbtest.Open(s.T()), services.Options{
		Issuer:      s.issuer,
		AllowSignup: true,
		Now:         func() time.Time { return testNow },
	})
	s.metrics = metrics.New()
	s.schema = s.newSchema(false)
}

func (s *GraphTestSuite) newSchema(requireAuth bool) *graphql.Schema {
	schema, err := NewSchema(s.svc, Options{RequireAuth: requireAuth, MaxDepth: 8, Metrics: s.metrics})
	s.Require().NoError(err)
	return schema
}

// exec runs an operation and annotates its errors the way the HTTP handler does
func (s *GraphTestSuite) exec(ctx context.Context, schema *graphql.Schema, query string, vars map[string]interface{}) *graphql.Response {
	resp := schema.Exec(ctx, query, "", vars)
	annotate(resp.Errors, s.metrics)
	return resp
}

// do runs an anonymous operation, requires it to succeed and decodes its data into out
func (s *GraphTestSuite) do(query string, vars map[string]interface{}, out interface{}) {
	resp := s.exec(s.ctx, s.schema, query, vars)
	s.Require().Empty(resp.Errors)
	if out != nil {
		s.Require().NoError(json.Unmarshal(resp.Data, out))
	}
}

// errorCode runs an operation that must fail and returns the code of its first error
func (s *GraphTestSuite) errorCode(ctx context.Context, schema *graphql.Schema, query string, vars map[string]interface{}) string {
	resp := s.exec(ctx, schema, query, vars)
	s.Require().NotEmpty(resp.Errors)
	return resp.Errors[0].Extensions["code"].(string)
}

func (s *GraphTestSuite) as(role models.UserRole) context.Context {
	return auth.WithIdentity(s.ctx, &auth.Identity{UserID: 1, Email: "user@lab.example", Role: role})
}

func (s *GraphTestSuite) createMember(name, email string) string {
	var out struct {
		CreateMember struct{ ID string }
	}
	s.do(`mutation($input: MemberInput!) { createMember(input: $input) { id } }`,
		map[string]interface{}{"input": map[string]interface{}{"name": name, "email": email, "role": "POSTDOC"}}, &out)
	return out.CreateMember.ID
}

func (s *GraphTestSuite) createProject(title string, budget float64) string {
	var out struct {
		CreateProject struct{ ID string }
	}
	s.do(`mutation($input: ProjectInput!) { createProject(input: $input) { id } }`,
		map[string]interface{}{"input": map[string]interface{}{"title": title, "status": "ACTIVE", "budget": budget}}, &out)
	return out.CreateProject.ID
}

func (s *GraphTestSuite) createEquipment(name string) string {
	var out struct {
		CreateEquipment struct{ ID string }
	}
	s.do(`mutation($input: EquipmentInput!) { createEquipment(input: $input) { id } }`,
		map[string]interface{}{"input": map[string]interface{}{"name": name}}, &out)
	return out.CreateEquipment.ID
}

func at(hours int) string {
	return testNow.Add(time.Duration(hours) * time.Hour).Format(time.RFC3339)
}
