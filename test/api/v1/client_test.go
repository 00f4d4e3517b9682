package api_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrack/labtrack/pkg/api/v1/client"
	"github.com/labtrack/labtrack/test"
)

// This file contains the end-to-end tests of the API client against a real server.

func strPtr(s string) *string { return &s }

func TestClientRequiresAuthentication(t *testing.T) {
	suite := test.NewSuite(t, test.WithAuthRequired(true))
	defer suite.Cleanup()

	_, err := suite.APIClient.ListMembers(suite.Context(), client.ListParams{})
	require.Error(t, err)
	assert.Equal(t, "UNAUTHENTICATED", client.ErrorCode(err))

	_, err = suite.APIClient.Login(suite.Context(), test.AdminEmail, "wrong-password")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHENTICATED", client.ErrorCode(err))

	suite.LoginAsAdmin()
	members, err := suite.APIClient.ListMembers(suite.Context(), client.ListParams{})
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestClientMembersAndProjects(t *testing.T) {
	suite := test.NewSuite(t, test.WithAuthRequired(true))
	defer suite.Cleanup()
	suite.LoginAsAdmin()
	ctx := suite.Context()

	ada, err := suite.APIClient.CreateMember(ctx, client.MemberParams{
		Name:  "Ada Lindqvist",
		Email: "ada@lab.example",
		Role:  "PROFESSOR",
		Title: strPtr("Principal Investigator"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", ada.Status)

	_, err = suite.APIClient.CreateMember(ctx, client.MemberParams{Name: "Imposter", Email: "ADA@lab.example"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", client.ErrorCode(err))

	project, err := suite.APIClient.CreateProject(ctx, client.ProjectParams{
		Title:     "Folding Pathways",
		Status:    "ACTIVE",
		Budget:    1000,
		MemberIDs: []string{ada.ID},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, project.Remaining, 0.001)

	projects, err := suite.APIClient.ListProjects(ctx, client.ListParams{Search: "folding"})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.ID, projects[0].ID)

	members, err := suite.APIClient.ListMembers(ctx, client.ListParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, members)

	require.NoError(t, suite.APIClient.DeleteMember(ctx, ada.ID))
	err = suite.APIClient.DeleteMember(ctx, ada.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", client.ErrorCode(err))
}

func TestClientBudgets(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()
	ctx := suite.Context()

	var created struct {
		Project struct {
			ID string `json:"id"`
		} `json:"createProject"`
	}
	require.NoError(t, suite.APIClient.GraphQL(ctx,
		`mutation { createProject(input: {title: "Cryo", budget: 500}) { id } }`, nil, &created))

	var grant struct {
		Grant struct {
			ID string `json:"id"`
		} `json:"createGrant"`
	}
	require.NoError(t, suite.APIClient.GraphQL(ctx,
		`mutation($p: ID!) { createGrant(input: {title: "DFG", agency: "DFG", budget: 2000, projectIds: [$p]}) { id } }`,
		map[string]interface{}{"p": created.Project.ID}, &grant))

	require.NoError(t, suite.APIClient.GraphQL(ctx,
		`mutation($p: ID!, $g: ID!) { createExpense(input: {description: "Grids", amount: 120.5, category: SUPPLIES, projectId: $p, grantId: $g}) { id } }`,
		map[string]interface{}{"p": created.Project.ID, "g": grant.Grant.ID}, nil))

	budget, err := suite.APIClient.ProjectBudget(ctx, created.Project.ID)
	require.NoError(t, err)
	assert.InDelta(t, 120.5, budget.Spent, 0.001)
	assert.InDelta(t, 379.5, budget.Remaining, 0.001)

	grantBudget, err := suite.APIClient.GrantBudget(ctx, grant.Grant.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1879.5, grantBudget.Remaining, 0.001)

	grants, err := suite.APIClient.ListGrants(ctx, client.ListParams{})
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.InDelta(t, 120.5, grants[0].Spent, 0.001)

	_, err = suite.APIClient.ProjectBudget(ctx, "999")
	assert.Equal(t, "NOT_FOUND", client.ErrorCode(err))
}

func TestClientEquipmentLifecycle(t *testing.T) {
	suite := test.NewSuite(t)
	defer suite.Cleanup()
	ctx := suite.Context()

	mei, err := suite.APIClient.CreateMember(ctx, client.MemberParams{Name: "Mei Tanaka", Email: "mei@lab.example"})
	require.NoError(t, err)

	scope, err := suite.APIClient.CreateEquipment(ctx, client.EquipmentParams{
		Name:     "Confocal Microscope",
		Location: strPtr("B2.14"),
	})
	require.NoError(t, err)
	assert.Equal(t, "AVAILABLE", scope.Status)

	scope, err = suite.APIClient.AssignEquipment(ctx, scope.ID, &mei.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "IN_USE", scope.Status)
	require.NotNil(t, scope.Member)
	assert.Equal(t, mei.ID, scope.Member.ID)

	_, err = suite.APIClient.SetEquipmentMaintenance(ctx, scope.ID, true)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION", client.ErrorCode(err))

	scope, err = suite.APIClient.ReleaseEquipment(ctx, scope.ID)
	require.NoError(t, err)
	assert.Equal(t, "AVAILABLE", scope.Status)
	assert.Nil(t, scope.Member)

	scope, err = suite.APIClient.SetEquipmentMaintenance(ctx, scope.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "MAINTENANCE", scope.Status)

	items, err := suite.APIClient.ListEquipment(ctx, client.ListParams{Search: "confocal"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "MAINTENANCE", items[0].Status)
}

func TestClientDocumentContent(t *testing.T) {
	suite := test.NewSuite(t, test.WithAuthRequired(true))
	defer suite.Cleanup()
	suite.LoginAsAdmin()
	ctx := suite.Context()

	var created struct {
		Document struct {
			ID         string `json:"id"`
			HasContent bool   `json:"hasContent"`
		} `json:"createDocument"`
	}
	require.NoError(t, suite.APIClient.GraphQL(ctx,
		`mutation { createDocument(input: {title: "Lab handbook", type: PROTOCOL}) { id hasContent } }`, nil, &created))
	assert.False(t, created.Document.HasContent)

	parsed, err := strconv.ParseUint(created.Document.ID, 10, 64)
	require.NoError(t, err)
	id := uint(parsed)

	content := []byte("# Handbook\nWear gloves.\n")
	uploaded, err := suite.APIClient.UploadDocument(ctx, id, "handbook.md", content)
	require.NoError(t, err)
	require.NotNil(t, uploaded.FileName)
	assert.Equal(t, "handbook.md", *uploaded.FileName)

	downloaded, err := suite.APIClient.DownloadDocument(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, content, downloaded)

	_, err = suite.APIClient.DownloadDocument(ctx, id+100)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.Code)

	suite.APIClient.SetToken("")
	_, err = suite.APIClient.DownloadDocument(ctx, id)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusUnauthorized, fe.Code)
}
