package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labtrack/labtrack/pkg/api/v1/client"
)

// Flag names
const (
	flagSerialNumber = "serial-number"
	flagLocation     = "location"
	flagMemberID     = "member-id"
	flagProjectID    = "project-id"
	flagOff          = "off"
)

func init() {
	equipmentCmd.AddCommand(listEquipmentCmd)
	equipmentCmd.AddCommand(createEquipmentCmd)
	equipmentCmd.AddCommand(assignEquipmentCmd)
	equipmentCmd.AddCommand(releaseEquipmentCmd)
	equipmentCmd.AddCommand(maintenanceEquipmentCmd)

	addListFlags(listEquipmentCmd)

	createEquipmentCmd.Flags().StringP(flagName, "n", "", "Equipment name")
	createEquipmentCmd.Flags().String(flagSerialNumber, "", "Serial number")
	createEquipmentCmd.Flags().String(flagLocation, "", "Where the equipment is kept")
	createEquipmentCmd.Flags().String(flagMemberID, "", "Assign to this member")
	createEquipmentCmd.Flags().String(flagProjectID, "", "Assign to this project")
	if err := createEquipmentCmd.MarkFlagRequired(flagName); err != nil {
		panic(fmt.Errorf("failed to mark name flag as required for create equipment command: %w", err))
	}

	assignEquipmentCmd.Flags().String(flagMemberID, "", "Member to assign to")
	assignEquipmentCmd.Flags().String(flagProjectID, "", "Project to assign to")
	assignEquipmentCmd.MarkFlagsOneRequired(flagMemberID, flagProjectID)

	maintenanceEquipmentCmd.Flags().Bool(flagOff, false, "Take the equipment out of maintenance")

	for _, c := range []*cobra.Command{assignEquipmentCmd, releaseEquipmentCmd, maintenanceEquipmentCmd} {
		c.Flags().StringP(flagID, "i", "", "Equipment ID")
		if err := c.MarkFlagRequired(flagID); err != nil {
			panic(fmt.Errorf("failed to mark id flag as required for equipment %s command: %w", c.Name(), err))
		}
	}
}

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "Manage lab equipment",
}

var listEquipmentCmd = &cobra.Command{
	Use:   "list",
	Short: "List equipment with its status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		params, err := listParams(cmd)
		if err != nil {
			return err
		}
		items, err := apiClient.ListEquipment(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("error listing equipment: %w", err)
		}
		return printJSON(cmd, struct {
			Equipment []client.Equipment `json:"equipment"`
		}{items})
	},
}

var createEquipmentCmd = &cobra.Command{
	Use:   "create",
	Short: "Register new equipment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString(flagName)
		e, err := apiClient.CreateEquipment(cmd.Context(), client.EquipmentParams{
			Name:         name,
			SerialNumber: optionalString(cmd, flagSerialNumber),
			Location:     optionalString(cmd, flagLocation),
			MemberID:     optionalString(cmd, flagMemberID),
			ProjectID:    optionalString(cmd, flagProjectID),
		})
		if err != nil {
			return fmt.Errorf("error creating equipment: %w", err)
		}
		return printJSON(cmd, e)
	},
}

var assignEquipmentCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign equipment to a member or project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetString(flagID)
		e, err := apiClient.AssignEquipment(cmd.Context(), id,
			optionalString(cmd, flagMemberID), optionalString(cmd, flagProjectID))
		if err != nil {
			return fmt.Errorf("error assigning equipment: %w", err)
		}
		return printJSON(cmd, e)
	},
}

var releaseEquipmentCmd = &cobra.Command{
	Use:   "release",
	Short: "Clear the assignment of equipment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetString(flagID)
		e, err := apiClient.ReleaseEquipment(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("error releasing equipment: %w", err)
		}
		return printJSON(cmd, e)
	},
}

var maintenanceEquipmentCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Put equipment under maintenance, or take it out with --off",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, _ := cmd.Flags().GetString(flagID)
		off, _ := cmd.Flags().GetBool(flagOff)
		e, err := apiClient.SetEquipmentMaintenance(cmd.Context(), id, !off)
		if err != nil {
			return fmt.Errorf("error updating equipment maintenance: %w", err)
		}
		return printJSON(cmd, e)
	},
}

// GetEquipmentCmd returns the equipment command
func GetEquipmentCmd() *cobra.Command {
	return equipmentCmd
}
