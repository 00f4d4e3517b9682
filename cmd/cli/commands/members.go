package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labtrack/labtrack/pkg/api/v1/client"
)

// Flag names shared by the resource commands
const (
	flagID     = "id"
	flagName   = "name"
	flagSearch = "search"
	flagPage   = "page"
	flagLimit  = "limit"
	flagRole   = "role"
	flagStatus = "status"
	flagTitle  = "title"
)

func init() {
	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(createMemberCmd)
	membersCmd.AddCommand(deleteMemberCmd)

	addListFlags(listMembersCmd)

	createMemberCmd.Flags().StringP(flagName, "n", "", "Full name")
	createMemberCmd.Flags().StringP(flagEmail, "e", "", "Email address")
	createMemberCmd.Flags().StringP(flagRole, "r", "", "Role, e.g. PHD_STUDENT")
	createMemberCmd.Flags().String(flagStatus, "", "Status, e.g. ACTIVE")
	createMemberCmd.Flags().StringP(flagTitle, "t", "", "Job title")
	for _, f := range []string{flagName, flagEmail} {
		if err := createMemberCmd.MarkFlagRequired(f); err != nil {
			panic(fmt.Errorf("failed to mark %s flag as required for create member command: %w", f, err))
		}
	}

	deleteMemberCmd.Flags().StringP(flagID, "i", "", "ID of the member to delete")
	if err := deleteMemberCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for delete member command: %w", err))
	}
}

// addListFlags registers the search and paging flags of list commands
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagSearch, "", "Only list entries matching this text")
	cmd.Flags().IntP(flagPage, "p", 1, "Page number for pagination")
	cmd.Flags().IntP(flagLimit, "l", client.DefaultPageSize, "Entries per page")
}

func listParams(cmd *cobra.Command) (client.ListParams, error) {
	search, err := cmd.Flags().GetString(flagSearch)
	if err != nil {
		return client.ListParams{}, fmt.Errorf("error getting search flag: %w", err)
	}
	page, err := cmd.Flags().GetInt(flagPage)
	if err != nil {
		return client.ListParams{}, fmt.Errorf("error getting page flag: %w", err)
	}
	limit, err := cmd.Flags().GetInt(flagLimit)
	if err != nil {
		return client.ListParams{}, fmt.Errorf("error getting limit flag: %w", err)
	}
	return client.ListParams{Search: search, Page: page, Limit: limit}, nil
}

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage lab members",
}

var listMembersCmd = &cobra.Command{
	Use:   "list",
	Short: "List members",
	RunE: func(cmd *cobra.Command, _ []string) error {
		params, err := listParams(cmd)
		if err != nil {
			return err
		}
		members, err := apiClient.ListMembers(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("error listing members: %w", err)
		}
		return printJSON(cmd, struct {
			Members []client.Member `json:"members"`
		}{members})
	},
}

var createMemberCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a member to the lab",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString(flagName)
		email, _ := cmd.Flags().GetString(flagEmail)
		role, _ := cmd.Flags().GetString(flagRole)
		status, _ := cmd.Flags().GetString(flagStatus)

		member, err := apiClient.CreateMember(cmd.Context(), client.MemberParams{
			Name:   name,
			Email:  email,
			Role:   role,
			Status: status,
			Title:  optionalString(cmd, flagTitle),
		})
		if err != nil {
			return fmt.Errorf("error creating member: %w", err)
		}
		return printJSON(cmd, member)
	},
}

var deleteMemberCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a member",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetString(flagID)
		if err := apiClient.DeleteMember(cmd.Context(), id); err != nil {
			return fmt.Errorf("error deleting member: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Member '%s' deleted successfully\n", id)
		return nil
	},
}

// GetMembersCmd returns the members command
func GetMembersCmd() *cobra.Command {
	return membersCmd
}
