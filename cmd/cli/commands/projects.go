package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labtrack/labtrack/pkg/api/v1/client"
)

// Flag names
const (
	flagDescription = "description"
	flagBudget      = "budget"
	flagMemberIDs   = "member-ids"
)

// projectOutput represents the filtered output for a project
type projectOutput struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	Budget    float64 `json:"budget"`
	Remaining float64 `json:"remaining"`
}

// projectListOutput represents the filtered output for a list of projects
type projectListOutput struct {
	Projects []projectOutput `json:"projects"`
}

func init() {
	projectsCmd.AddCommand(listProjectsCmd)
	projectsCmd.AddCommand(createProjectCmd)
	projectsCmd.AddCommand(projectBudgetCmd)

	addListFlags(listProjectsCmd)

	createProjectCmd.Flags().StringP(flagTitle, "t", "", "Project title")
	createProjectCmd.Flags().StringP(flagDescription, "d", "", "Project description")
	createProjectCmd.Flags().String(flagStatus, "", "Status, e.g. ACTIVE")
	createProjectCmd.Flags().Float64P(flagBudget, "b", 0, "Allocated budget")
	createProjectCmd.Flags().StringSlice(flagMemberIDs, nil, "IDs of the members working on the project")
	if err := createProjectCmd.MarkFlagRequired(flagTitle); err != nil {
		panic(fmt.Errorf("failed to mark title flag as required for create project command: %w", err))
	}

	projectBudgetCmd.Flags().StringP(flagID, "i", "", "Project ID")
	if err := projectBudgetCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for project budget command: %w", err))
	}
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with their remaining budget",
	RunE: func(cmd *cobra.Command, _ []string) error {
		params, err := listParams(cmd)
		if err != nil {
			return err
		}
		projects, err := apiClient.ListProjects(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("error listing projects: %w", err)
		}

		output := projectListOutput{
			Projects: make([]projectOutput, len(projects)),
		}
		for i, p := range projects {
			output.Projects[i] = projectOutput{
				ID:        p.ID,
				Title:     p.Title,
				Status:    p.Status,
				Budget:    p.Budget,
				Remaining: p.Remaining,
			}
		}
		return printJSON(cmd, output)
	},
}

var createProjectCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		title, err := cmd.Flags().GetString(flagTitle)
		if err != nil {
			return fmt.Errorf("error getting title flag: %w", err)
		}
		status, _ := cmd.Flags().GetString(flagStatus)
		budget, err := cmd.Flags().GetFloat64(flagBudget)
		if err != nil {
			return fmt.Errorf("error getting budget flag: %w", err)
		}
		memberIDs, err := cmd.Flags().GetStringSlice(flagMemberIDs)
		if err != nil {
			return fmt.Errorf("error getting member-ids flag: %w", err)
		}

		project, err := apiClient.CreateProject(cmd.Context(), client.ProjectParams{
			Title:       title,
			Description: optionalString(cmd, flagDescription),
			Status:      status,
			Budget:      budget,
			MemberIDs:   memberIDs,
		})
		if err != nil {
			return fmt.Errorf("error creating project: %w", err)
		}
		return printJSON(cmd, projectOutput{
			ID:        project.ID,
			Title:     project.Title,
			Status:    project.Status,
			Budget:    project.Budget,
			Remaining: project.Remaining,
		})
	},
}

var projectBudgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show budget, spending and remaining amount of a project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetString(flagID)
		budget, err := apiClient.ProjectBudget(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("error getting project budget: %w", err)
		}
		return printJSON(cmd, budget)
	},
}

// GetProjectsCmd returns the projects command
func GetProjectsCmd() *cobra.Command {
	return projectsCmd
}
