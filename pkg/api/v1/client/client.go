// Package client provides the API client for interacting with the labtrack API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack/internal/db/models"
	"github.com/labtrack/labtrack/pkg/api/v1/handlers"
	"github.com/labtrack/labtrack/pkg/api/v1/routes"
)

const (
	// DefaultTimeout is the default timeout for API requests
	DefaultTimeout = 30 * time.Second
	// DefaultPageSize is the number of items listed when no limit is given
	DefaultPageSize = 50
)

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// GraphQL runs an arbitrary operation and decodes its data into out
	GraphQL(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error

	// Auth
	Login(ctx context.Context, email, password string) (*AuthPayload, error)
	SetToken(token string)

	// Members
	ListMembers(ctx context.Context, params ListParams) ([]Member, error)
	CreateMember(ctx context.Context, params MemberParams) (*Member, error)
	DeleteMember(ctx context.Context, id string) error

	// Projects and grants
	ListProjects(ctx context.Context, params ListParams) ([]Project, error)
	CreateProject(ctx context.Context, params ProjectParams) (*Project, error)
	ProjectBudget(ctx context.Context, id string) (*Budget, error)
	ListGrants(ctx context.Context, params ListParams) ([]Grant, error)
	GrantBudget(ctx context.Context, id string) (*Budget, error)

	// Equipment
	ListEquipment(ctx context.Context, params ListParams) ([]Equipment, error)
	CreateEquipment(ctx context.Context, params EquipmentParams) (*Equipment, error)
	AssignEquipment(ctx context.Context, id string, memberID, projectID *string) (*Equipment, error)
	ReleaseEquipment(ctx context.Context, id string) (*Equipment, error)
	SetEquipmentMaintenance(ctx context.Context, id string, maintenance bool) (*Equipment, error)

	// Document content
	UploadDocument(ctx context.Context, id uint, fileName string, content []byte) (*models.Document, error)
	DownloadDocument(ctx context.Context, id uint) ([]byte, error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration

	// Token is sent as a bearer token when set
	Token string
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL   string
	timeout   time.Duration
	AuthToken string
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	u, err := url.Parse(opts.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL:   opts.BaseURL,
		timeout:   timeout,
		AuthToken: opts.Token,
	}, nil
}

// SetToken sets the bearer token sent with every request
func (c *APIClient) SetToken(token string) {
	c.AuthToken = token
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.AuthToken != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.AuthToken)
	}
	return agent, nil
}

// doRequest sends the HTTP request and returns the body of a successful response
func (c *APIClient) doRequest(agent *fiber.Agent) ([]byte, error) {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		var errResp handlers.ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return nil, &fiber.Error{Code: statusCode, Message: errResp.Error}
		}
		return nil, &fiber.Error{Code: statusCode, Message: string(body)}
	}
	return body, nil
}

// executeRequest sends a JSON request and decodes the JSON response into response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint)
	if err != nil {
		return err
	}
	if body != nil {
		agent.JSON(body)
	}

	raw, err := c.doRequest(agent)
	if err != nil {
		return err
	}
	if response != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, response); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var response map[string]string
	err := c.executeRequest(ctx, http.MethodGet, routes.HealthCheckURL(), nil, &response)
	return response, err
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []*GraphQLError `json:"errors"`
}

// GraphQL posts an operation and decodes its data into out. The first
// GraphQL error is returned as a *GraphQLError.
func (c *APIClient) GraphQL(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	var resp graphQLResponse
	err := c.executeRequest(ctx, http.MethodPost, routes.GraphQLURL(), graphQLRequest{Query: query, Variables: variables}, &resp)
	if err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return resp.Errors[0]
	}
	if out != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			return fmt.Errorf("error decoding data: %w", err)
		}
	}
	return nil
}

// UploadDocument stores content as the file of document id
func (c *APIClient) UploadDocument(ctx context.Context, id uint, fileName string, content []byte) (*models.Document, error) {
	agent, err := c.createAgent(ctx, http.MethodPut, routes.DocumentContentURL(id))
	if err != nil {
		return nil, err
	}
	agent.FileData(&fiber.FormFile{Fieldname: "file", Name: fileName, Content: content}).MultipartForm(nil)

	raw, err := c.doRequest(agent)
	if err != nil {
		return nil, err
	}
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &doc, nil
}

// DownloadDocument fetches the content of document id, following a redirect to
// a presigned URL
func (c *APIClient) DownloadDocument(ctx context.Context, id uint) ([]byte, error) {
	agent, err := c.createAgent(ctx, http.MethodGet, routes.DocumentContentURL(id))
	if err != nil {
		return nil, err
	}
	agent.MaxRedirectsCount(3)
	return c.doRequest(agent)
}

