package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labtrack/labtrack/pkg/api/v1/client"
)

func init() {
	grantsCmd.AddCommand(listGrantsCmd)
	grantsCmd.AddCommand(grantBudgetCmd)

	addListFlags(listGrantsCmd)

	grantBudgetCmd.Flags().StringP(flagID, "i", "", "Grant ID")
	if err := grantBudgetCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for grant budget command: %w", err))
	}
}

var grantsCmd = &cobra.Command{
	Use:   "grants",
	Short: "Inspect grants and their spending",
}

var listGrantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List grants",
	RunE: func(cmd *cobra.Command, _ []string) error {
		params, err := listParams(cmd)
		if err != nil {
			return err
		}
		grants, err := apiClient.ListGrants(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("error listing grants: %w", err)
		}
		return printJSON(cmd, struct {
			Grants []client.Grant `json:"grants"`
		}{grants})
	},
}

var grantBudgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show budget, spending and remaining amount of a grant",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetString(flagID)
		budget, err := apiClient.GrantBudget(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("error getting grant budget: %w", err)
		}
		return printJSON(cmd, budget)
	},
}

// GetGrantsCmd returns the grants command
func GetGrantsCmd() *cobra.Command {
	return grantsCmd
}
