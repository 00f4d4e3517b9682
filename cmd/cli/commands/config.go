package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/labtrack/labtrack/config"
	"github.com/labtrack/labtrack/pkg/api/v1/client"
	"github.com/labtrack/labtrack/pkg/api/v1/routes"
)

// configuration keys, shared by the config file, flags and LABTRACK_* env vars
const (
	keyServerAddress = "server_address"
	keyToken         = "token"
	keyTimeout       = "timeout"
)

const (
	envPrefix      = "LABTRACK"
	configFileName = config.CLIConfigFileName
)

// cliConfig is the resolved CLI configuration. Values come from flags, then
// LABTRACK_* environment variables, then the config file.
type cliConfig struct {
	viper         *viper.Viper
	path          string
	ServerAddress string        `mapstructure:"server_address"`
	Token         string        `mapstructure:"token"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// loadConfig reads the config file at path, if present, and binds the
// persistent flags of cmd so explicit flags take precedence.
func loadConfig(cmd *cobra.Command, path string) (*cliConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyServerAddress, routes.DefaultBaseURL)
	v.SetDefault(keyTimeout, client.DefaultTimeout)

	for key, flag := range map[string]string{
		keyServerAddress: flagServerAddress,
		keyToken:         flagToken,
		keyTimeout:       flagTimeout,
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &cliConfig{viper: v, path: path}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if cfg.ServerAddress == "" {
		return nil, fmt.Errorf("server address cannot be empty")
	}
	return cfg, nil
}

// SaveToken stores token in the config file, creating it when missing
func (c *cliConfig) SaveToken(token string) error {
	c.Token = token
	c.viper.Set(keyToken, token)
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	if err := c.viper.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return os.Chmod(c.path, 0o600)
}

// Options converts the configuration to API client options
func (c *cliConfig) Options() *client.Options {
	return &client.Options{
		BaseURL: c.ServerAddress,
		Timeout: c.Timeout,
		Token:   c.Token,
	}
}
