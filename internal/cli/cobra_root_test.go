package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/logging"
	"taskboard/internal/repository/sqldb"
	"taskboard/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot(t *testing.T, repo sqldb.Repository, opts ...RootOption) (*RootCommand, *config.Config, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cfg := config.NewConfig()
	opts = append([]RootOption{WithRepository(repo), WithOutput(out), WithLogger(logging.Discard())}, opts...)
	return NewRootCommand(cfg, opts...), cfg, out
}

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {
	_, repo, _ := setupTestApp(t)
	root, cfg, _ := newTestRoot(t, repo)

	err := root.ExecuteArgs([]string{
		"--app-timeout", "5s",
		"--api-url", "http://tasks.internal/api",
		"--allowed-origins", "http://a.test,http://b.test",
		"user", "list",
	})
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Application.Timeout)
	assert.Equal(t, "http://tasks.internal/api", cfg.Client.BaseURL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Second, root.getAppTimeout())
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	_, repo, _ := setupTestApp(t)
	root, _, _ := newTestRoot(t, repo)

	err := root.ExecuteArgs([]string{"--db-driver", "mysql", "user", "list"})
	require.Error(t, err)
	assert.Equal(t, "failed to load configuration: database.driver: driver must be one of sqlite, postgres", err.Error())
}

func TestRootCommand_UserLifecycle(t *testing.T) {
	_, repo, _ := setupTestApp(t)

	root, _, out := newTestRoot(t, repo)
	require.NoError(t, root.ExecuteArgs([]string{"user", "create", "ada@example.com", "--name", "Ada"}))

	var created domain.User
	require.NoError(t, json.Unmarshal(out.Bytes(), &created))
	assert.Equal(t, "ada@example.com", created.Email)

	// a fresh root shares the repository, so the user is visible
	root, _, out = newTestRoot(t, repo)
	require.NoError(t, root.ExecuteArgs([]string{"user", "update", "1", "--email", "lovelace@example.com"}))
	assert.Contains(t, out.String(), `"email": "lovelace@example.com"`)
	assert.Contains(t, out.String(), `"name": "Ada"`)

	root, _, _ = newTestRoot(t, repo)
	require.NoError(t, root.ExecuteArgs([]string{"user", "delete", "1"}))

	root, _, _ = newTestRoot(t, repo)
	err := root.ExecuteArgs([]string{"user", "get", "1"})
	require.Error(t, err)
	assert.Equal(t, "failed to get user: user not found: 1", err.Error())
}

func TestRootCommand_PostCommands(t *testing.T) {
	_, repo, _ := setupTestApp(t)
	ctx := context.Background()

	author, err := repo.CreateUser(ctx, "ada@example.com", nil)
	require.NoError(t, err)

	root, _, out := newTestRoot(t, repo)
	require.NoError(t, root.ExecuteArgs([]string{"post", "create", "Hello", "--content", "body", "--author", "1"}))

	var created domain.Post
	require.NoError(t, json.Unmarshal(out.Bytes(), &created))
	require.NotNil(t, created.AuthorID)
	assert.Equal(t, author.ID, *created.AuthorID)

	root, _, out = newTestRoot(t, repo)
	require.NoError(t, root.ExecuteArgs([]string{"post", "publish", "1"}))
	assert.Contains(t, out.String(), `"published": true`)

	root, _, _ = newTestRoot(t, repo)
	err = root.ExecuteArgs([]string{"post", "publish", "99"})
	require.Error(t, err)
	assert.Equal(t, "failed to publish post: not found", err.Error())
}

func TestRootCommand_InvalidID(t *testing.T) {
	_, repo, _ := setupTestApp(t)
	root, _, _ := newTestRoot(t, repo)

	err := root.ExecuteArgs([]string{"post", "get", "abc"})
	require.Error(t, err)
	assert.Equal(t, `failed to get post: invalid id "abc": must be a positive integer`, err.Error())
}

func TestRootCommand_Output(t *testing.T) {
	_, repo, _ := setupTestApp(t)
	root, _, out := newTestRoot(t, repo)

	require.NoError(t, root.ExecuteArgs([]string{"output", "format=json"}))
	assert.Equal(t, "[]\n", out.String())

	root, _, _ = newTestRoot(t, repo)
	err := root.ExecuteArgs([]string{"output", "format=xml"})
	require.Error(t, err)
	assert.Equal(t, "failed to export tasks: unsupported format: xml", err.Error())
}

func TestRootCommand_Board(t *testing.T) {
	_, repo, _ := setupTestApp(t)

	var got tea.Model
	runner := func(ctx context.Context, model tea.Model) error {
		got = model
		return nil
	}

	root, _, _ := newTestRoot(t, repo, WithProgramRunner(runner))
	require.NoError(t, root.ExecuteArgs([]string{"board", "--api-url", "http://127.0.0.1:1/api"}))

	model, ok := got.(*tui.Model)
	require.True(t, ok)
	assert.Equal(t, tui.ModeList, model.Mode())

	failing := func(ctx context.Context, model tea.Model) error {
		return errors.New("no terminal")
	}
	root, _, _ = newTestRoot(t, repo, WithProgramRunner(failing))
	err := root.ExecuteArgs([]string{"board"})
	require.Error(t, err)
	assert.Equal(t, "failed to run board: no terminal", err.Error())
}
