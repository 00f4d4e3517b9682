package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrack/labtrack/test"
)

// cliEnv runs commands against a test server with a private config file
type cliEnv struct {
	t          *testing.T
	suite      *test.Suite
	configFile string
}

func newCLIEnv(t *testing.T, opts ...test.Option) *cliEnv {
	suite := test.NewSuite(t, opts...)
	t.Cleanup(suite.Cleanup)
	return &cliEnv{
		t:          t,
		suite:      suite,
		configFile: filepath.Join(t.TempDir(), configFileName),
	}
}

// run executes the CLI with args and returns its output
func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()
	defer resetFlags(RootCmd)

	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(append([]string{"--server-address", e.suite.Server.URL, "--config", e.configFile}, args...))
	err := RootCmd.Execute()
	return buf.String(), err
}

func (e *cliEnv) runJSON(out interface{}, args ...string) {
	e.t.Helper()
	output, err := e.run(args...)
	require.NoError(e.t, err, output)
	require.NoError(e.t, json.Unmarshal([]byte(output), out), "Response is not valid JSON: %s", output)
}

// resetFlags restores every flag to its default so package-level commands
// can run again within the same test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestLoginStoresToken(t *testing.T) {
	env := newCLIEnv(t, test.WithAuthRequired(true))
	require.NoError(t, env.suite.Services.Users.EnsureAdmin(env.suite.Context(), test.AdminEmail, test.AdminPassword))

	_, err := env.run("members", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error listing members")

	var login struct {
		Email  string `json:"email"`
		Role   string `json:"role"`
		Config string `json:"config"`
	}
	env.runJSON(&login, "login", "--email", test.AdminEmail, "--password", test.AdminPassword)
	assert.Equal(t, test.AdminEmail, login.Email)
	assert.Equal(t, "ADMIN", login.Role)
	assert.Equal(t, env.configFile, login.Config)

	raw, err := os.ReadFile(env.configFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "token:")

	// the stored token authenticates later invocations
	var list struct {
		Members []json.RawMessage `json:"members"`
	}
	env.runJSON(&list, "members", "list")
	assert.Empty(t, list.Members)
}

func TestLoginRequiresPassword(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("login", "--email", test.AdminEmail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
}

func TestMembersCommands(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("members", "create", "--name", "Ada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "email" not set`)

	var member struct {
		ID    string  `json:"id"`
		Email string  `json:"email"`
		Role  string  `json:"role"`
		Title *string `json:"title"`
	}
	env.runJSON(&member, "members", "create", "--name", "Ada Lindqvist", "--email", "ada@lab.example",
		"--role", "PROFESSOR", "--title", "PI")
	assert.Equal(t, "PROFESSOR", member.Role)
	require.NotNil(t, member.Title)
	assert.Equal(t, "PI", *member.Title)

	// title was not given, so it stays unset
	var second struct {
		Title *string `json:"title"`
	}
	env.runJSON(&second, "members", "create", "--name", "Mei", "--email", "mei@lab.example")
	assert.Nil(t, second.Title)

	var list struct {
		Members []struct {
			Email string `json:"email"`
		} `json:"members"`
	}
	env.runJSON(&list, "members", "list", "--search", "ada")
	require.Len(t, list.Members, 1)
	assert.Equal(t, "ada@lab.example", list.Members[0].Email)

	output, err := env.run("members", "delete", "--id", member.ID)
	require.NoError(t, err)
	assert.Contains(t, output, "deleted successfully")

	_, err = env.run("members", "delete", "--id", member.ID)
	assert.Error(t, err)
}

func TestProjectsAndGrantsCommands(t *testing.T) {
	env := newCLIEnv(t)

	var project projectOutput
	env.runJSON(&project, "projects", "create", "--title", "Cryo-EM Pipeline", "--budget", "800", "--status", "ACTIVE")
	assert.Equal(t, "ACTIVE", project.Status)
	assert.InDelta(t, 800.0, project.Remaining, 0.001)

	var list projectListOutput
	env.runJSON(&list, "projects", "list")
	require.Len(t, list.Projects, 1)

	var budget struct {
		Budget    float64 `json:"budget"`
		Spent     float64 `json:"spent"`
		Remaining float64 `json:"remaining"`
	}
	env.runJSON(&budget, "projects", "budget", "--id", project.ID)
	assert.InDelta(t, 800.0, budget.Budget, 0.001)
	assert.Zero(t, budget.Spent)

	_, err := env.run("projects", "budget", "--id", "4242")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	var grants struct {
		Grants []json.RawMessage `json:"grants"`
	}
	env.runJSON(&grants, "grants", "list")
	assert.Empty(t, grants.Grants)
}

func TestEquipmentCommands(t *testing.T) {
	env := newCLIEnv(t)

	var member struct {
		ID string `json:"id"`
	}
	env.runJSON(&member, "members", "create", "--name", "Jonas", "--email", "jonas@lab.example")

	type equipment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	var e equipment
	env.runJSON(&e, "equipment", "create", "--name", "Ultracentrifuge", "--location", "B2.03")
	assert.Equal(t, "AVAILABLE", e.Status)

	_, err := env.run("equipment", "assign", "--id", e.ID)
	require.Error(t, err)

	env.runJSON(&e, "equipment", "assign", "--id", e.ID, "--member-id", member.ID)
	assert.Equal(t, "IN_USE", e.Status)

	_, err = env.run("equipment", "maintenance", "--id", e.ID)
	require.Error(t, err)

	env.runJSON(&e, "equipment", "release", "--id", e.ID)
	assert.Equal(t, "AVAILABLE", e.Status)

	env.runJSON(&e, "equipment", "maintenance", "--id", e.ID)
	assert.Equal(t, "MAINTENANCE", e.Status)

	env.runJSON(&e, "equipment", "maintenance", "--id", e.ID, "--off")
	assert.Equal(t, "AVAILABLE", e.Status)

	var list struct {
		Equipment []equipment `json:"equipment"`
	}
	env.runJSON(&list, "equipment", "list")
	require.Len(t, list.Equipment, 1)
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("server_address: http://from-file:1\ntoken: file-token\n"), 0o600))

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "labtrack"}
		cmd.Flags().String(flagServerAddress, "", "")
		cmd.Flags().String(flagToken, "", "")
		cmd.Flags().Duration(flagTimeout, 0, "")
		return cmd
	}

	cfg, err := loadConfig(newCmd(), path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-file:1", cfg.ServerAddress)
	assert.Equal(t, "file-token", cfg.Token)

	t.Setenv("LABTRACK_SERVER_ADDRESS", "http://from-env:2")
	cfg, err = loadConfig(newCmd(), path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:2", cfg.ServerAddress)

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set(flagServerAddress, "http://from-flag:3"))
	cfg, err = loadConfig(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag:3", cfg.ServerAddress)
	assert.Equal(t, "file-token", cfg.Token)
}

func TestConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(&cobra.Command{Use: "labtrack"}, filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ServerAddress)
	assert.Empty(t, cfg.Token)
}

func TestLoadFixtures(t *testing.T) {
	f, err := loadFixtures("")
	require.NoError(t, err)
	assert.NotEmpty(t, f.Members)

	path := filepath.Join(t.TempDir(), "lab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("members:\n  - name: Solo\n    email: solo@lab.example\n"), 0o600))
	f, err = loadFixtures(path)
	require.NoError(t, err)
	require.Len(t, f.Members, 1)
	assert.Equal(t, "Solo", f.Members[0].Name)

	_, err = loadFixtures(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
