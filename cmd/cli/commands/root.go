package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labtrack/labtrack/config"
	"github.com/labtrack/labtrack/pkg/api/v1/client"
	"github.com/labtrack/labtrack/pkg/api/v1/routes"
)

// flag names
const (
	flagServerAddress = "server-address"
	flagToken         = "token"
	flagTimeout       = "timeout"
	flagConfigFile    = "config"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// cfg is the configuration resolved by PersistentPreRunE
	cfg *cliConfig
	// configPath is the config file in use. Flag parsing sets this.
	configPath string
)

// initClient initializes the API client
func initClient() error {
	var err error
	apiClient, err = client.NewClient(cfg.Options())
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, flagConfigFile, config.CLIConfigPath(), "Config file (env: LABTRACK_CONFIG)")
	RootCmd.PersistentFlags().StringP(flagServerAddress, "s", routes.DefaultBaseURL, "Address of the labtrack API server (env: LABTRACK_SERVER_ADDRESS)")
	RootCmd.PersistentFlags().String(flagToken, "", "Bearer token (env: LABTRACK_TOKEN)")
	RootCmd.PersistentFlags().Duration(flagTimeout, client.DefaultTimeout, "API request timeout")

	RootCmd.AddCommand(GetLoginCmd())
	RootCmd.AddCommand(GetSeedCmd())
	RootCmd.AddCommand(GetMembersCmd())
	RootCmd.AddCommand(GetProjectsCmd())
	RootCmd.AddCommand(GetGrantsCmd())
	RootCmd.AddCommand(GetEquipmentCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "labtrack",
	Short: "labtrack CLI - A command line interface for the labtrack API",
	Long: `labtrack CLI manages lab members, projects, grants and equipment through the labtrack API.
Settings are read from flags, then LABTRACK_* environment variables, then ~/.labtrack.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = loadConfig(cmd, configPath); err != nil {
			return err
		}
		return initClient()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// printJSON pretty prints v to the command output
func printJSON(cmd *cobra.Command, v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(prettyJSON))
	return nil
}

// optionalString returns nil for an unset flag
func optionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
