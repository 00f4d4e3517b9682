package client

import (
	"context"
)

// Login exchanges credentials for a token and uses it for later requests
func (c *APIClient) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	var out struct {
		Login AuthPayload `json:"login"`
	}
	vars := map[string]interface{}{"email": email, "password": password}
	if err := c.GraphQL(ctx, loginMutation, vars, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Login.Token)
	return &out.Login, nil
}

// ListMembers lists lab members
func (c *APIClient) ListMembers(ctx context.Context, params ListParams) ([]Member, error) {
	var out struct {
		Members []Member `json:"members"`
	}
	err := c.GraphQL(ctx, membersQuery, params.variables(), &out)
	return out.Members, err
}

// CreateMember adds a lab member
func (c *APIClient) CreateMember(ctx context.Context, params MemberParams) (*Member, error) {
	var out struct {
		CreateMember Member `json:"createMember"`
	}
	if err := c.GraphQL(ctx, createMemberMutation, map[string]interface{}{"input": params}, &out); err != nil {
		return nil, err
	}
	return &out.CreateMember, nil
}

// DeleteMember removes a lab member
func (c *APIClient) DeleteMember(ctx context.Context, id string) error {
	return c.GraphQL(ctx, deleteMemberMutation, map[string]interface{}{"id": id}, nil)
}

// ListProjects lists projects with their budget roll-up
func (c *APIClient) ListProjects(ctx context.Context, params ListParams) ([]Project, error) {
	var out struct {
		Projects []Project `json:"projects"`
	}
	err := c.GraphQL(ctx, projectsQuery, params.variables(), &out)
	return out.Projects, err
}

// CreateProject adds a project
func (c *APIClient) CreateProject(ctx context.Context, params ProjectParams) (*Project, error) {
	var out struct {
		CreateProject Project `json:"createProject"`
	}
	if err := c.GraphQL(ctx, createProjectMutation, map[string]interface{}{"input": params}, &out); err != nil {
		return nil, err
	}
	return &out.CreateProject, nil
}

// ProjectBudget returns the budget roll-up of a project
func (c *APIClient) ProjectBudget(ctx context.Context, id string) (*Budget, error) {
	var out struct {
		Project *Budget `json:"project"`
	}
	if err := c.GraphQL(ctx, projectBudgetQuery, map[string]interface{}{"id": id}, &out); err != nil {
		return nil, err
	}
	if out.Project == nil {
		return nil, notFound("project", id)
	}
	return out.Project, nil
}

// ListGrants lists grants with their budget roll-up
func (c *APIClient) ListGrants(ctx context.Context, params ListParams) ([]Grant, error) {
	var out struct {
		Grants []Grant `json:"grants"`
	}
	err := c.GraphQL(ctx, grantsQuery, params.variables(), &out)
	return out.Grants, err
}

// GrantBudget returns the budget roll-up of a grant
func (c *APIClient) GrantBudget(ctx context.Context, id string) (*Budget, error) {
	var out struct {
		Grant *Budget `json:"grant"`
	}
	if err := c.GraphQL(ctx, grantBudgetQuery, map[string]interface{}{"id": id}, &out); err != nil {
		return nil, err
	}
	if out.Grant == nil {
		return nil, notFound("grant", id)
	}
	return out.Grant, nil
}

// ListEquipment lists equipment and its holders
func (c *APIClient) ListEquipment(ctx context.Context, params ListParams) ([]Equipment, error) {
	var out struct {
		EquipmentList []Equipment `json:"equipmentList"`
	}
	err := c.GraphQL(ctx, equipmentQuery, params.variables(), &out)
	return out.EquipmentList, err
}

// CreateEquipment adds equipment
func (c *APIClient) CreateEquipment(ctx context.Context, params EquipmentParams) (*Equipment, error) {
	var out struct {
		CreateEquipment Equipment `json:"createEquipment"`
	}
	if err := c.GraphQL(ctx, createEquipmentMutation, map[string]interface{}{"input": params}, &out); err != nil {
		return nil, err
	}
	return &out.CreateEquipment, nil
}

// AssignEquipment assigns equipment to a member or a project
func (c *APIClient) AssignEquipment(ctx context.Context, id string, memberID, projectID *string) (*Equipment, error) {
	var out struct {
		AssignEquipment Equipment `json:"assignEquipment"`
	}
	vars := map[string]interface{}{"id": id, "memberId": memberID, "projectId": projectID}
	if err := c.GraphQL(ctx, assignEquipmentMutation, vars, &out); err != nil {
		return nil, err
	}
	return &out.AssignEquipment, nil
}

// ReleaseEquipment clears the assignment of equipment
func (c *APIClient) ReleaseEquipment(ctx context.Context, id string) (*Equipment, error) {
	var out struct {
		ReleaseEquipment Equipment `json:"releaseEquipment"`
	}
	if err := c.GraphQL(ctx, releaseEquipmentMutation, map[string]interface{}{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out.ReleaseEquipment, nil
}

// SetEquipmentMaintenance moves equipment in or out of maintenance
func (c *APIClient) SetEquipmentMaintenance(ctx context.Context, id string, maintenance bool) (*Equipment, error) {
	var out struct {
		SetEquipmentMaintenance Equipment `json:"setEquipmentMaintenance"`
	}
	vars := map[string]interface{}{"id": id, "maintenance": maintenance}
	if err := c.GraphQL(ctx, equipmentMaintenanceMutation, vars, &out); err != nil {
		return nil, err
	}
	return &out.SetEquipmentMaintenance, nil
}

func notFound(entity, id string) error {
	e := &GraphQLError{Message: entity + " " + id + " not found"}
	e.Extensions.Code = "NOT_FOUND"
	return e
}
