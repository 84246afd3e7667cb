package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/minutes-api/internal/services/diagnostics"
	apperrors "github.com/killallgit/minutes-api/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestMigrateAndDiagnosticsCommands(t *testing.T) {
	out, err := execute(t, "migrate", "up", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")

	out, err = execute(t, "migrate", "up", "--dry-run=false")
	require.NoError(t, err)
	assert.Contains(t, out, `Migrated table "diagnostics"`)

	out, err = execute(t, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "applied")

	out, err = execute(t, "diagnostics", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No diagnostics recorded")

	// record one failure through the same store the server uses
	svc, db, err := openDiagnostics(appConfig, nil)
	require.NoError(t, err)
	svc.Record(context.Background(), diagnostics.Entry{
		WorkspaceID: "0f8fad5b-d9cb-469f-a165-70867728950e",
		Slot:        "summary",
		ModelID:     "gemini-1.5-pro-latest",
		Err:         apperrors.New(apperrors.ErrCodeAuth, "APIキーが無効です。"),
		RawResponse: "raw body",
	})
	require.NoError(t, db.Close())

	out, err = execute(t, "diagnostics", "list", "--limit", "5", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "0f8fad5b")
	assert.Contains(t, out, "AUTH: APIキーが無効です。")
	assert.Contains(t, out, "raw body")

	out, err = execute(t, "diagnostics", "prune", "--older-than", "1h")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 0 diagnostic record(s)")

	_, err = execute(t, "diagnostics", "prune", "--older-than", "0s")
	assert.Error(t, err)
}

func TestMigrateDownCancelled(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(bytes.NewBufferString("n\n"))
	cmd.SetArgs([]string{"migrate", "down", "--dry-run=false"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Migration rollback cancelled")
}
