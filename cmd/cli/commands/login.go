package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Flag names
const (
	flagEmail    = "email"
	flagPassword = "password"
)

func init() {
	loginCmd.Flags().StringP(flagEmail, "e", "", "Account email")
	loginCmd.Flags().StringP(flagPassword, "p", "", "Account password (env: LABTRACK_PASSWORD)")
	if err := loginCmd.MarkFlagRequired(flagEmail); err != nil {
		panic(fmt.Errorf("failed to mark email flag as required for login command: %w", err))
	}
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the token in the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		email, err := cmd.Flags().GetString(flagEmail)
		if err != nil {
			return fmt.Errorf("error getting email flag: %w", err)
		}
		password, err := cmd.Flags().GetString(flagPassword)
		if err != nil {
			return fmt.Errorf("error getting password flag: %w", err)
		}
		if password == "" {
			password = cfg.viper.GetString("password")
		}
		if password == "" {
			return fmt.Errorf("password is required")
		}

		payload, err := apiClient.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("error logging in: %w", err)
		}
		if err := cfg.SaveToken(payload.Token); err != nil {
			return err
		}
		apiClient.SetToken(payload.Token)

		return printJSON(cmd, struct {
			Email     string    `json:"email"`
			Role      string    `json:"role"`
			ExpiresAt time.Time `json:"expires_at"`
			Config    string    `json:"config"`
		}{payload.User.Email, payload.User.Role, payload.ExpiresAt, cfg.path})
	},
}

// GetLoginCmd returns the login command
func GetLoginCmd() *cobra.Command {
	return loginCmd
}
