package cli

import (
	"bytes"
	"testing"

	"taskboard/internal/config"
	"taskboard/internal/logging"
	"taskboard/internal/repository/sqldb"

	"github.com/stretchr/testify/require"
)

// setupTestApp returns an App over a fresh in-memory repository and the
// buffer its output goes to
func setupTestApp(t *testing.T) (*App, sqldb.Repository, *bytes.Buffer) {
	t.Helper()

	repo, err := sqldb.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	out := &bytes.Buffer{}
	app := NewAppWithRepository(config.NewConfig(), repo, logging.Discard(), out)
	return app, repo, out
}

func strPtr(s string) *string { return &s }
