package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/minutes-api/pkg/config"
)

func TestModelsCommand(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"models"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "gemini-1.5-pro-latest")
	assert.Contains(t, out, "Gemini 1.5 Flash (Latest)")
	assert.Regexp(t, `gemini-2\.5-pro-exp-03-25\s+Gemini 2\.5 Pro \(Experimental\)\s+\*`, out)
}

func TestCatalogFromConfig(t *testing.T) {
	catalog := catalogFromConfig(config.ModelsConfig{
		Default: "b",
		Available: []config.ModelConfig{
			{ID: "a", Name: "Model A"},
			{ID: "b", Name: "Model B"},
		},
	})

	assert.Equal(t, "b", catalog.Default)
	require.Len(t, catalog.Models, 2)
	assert.Equal(t, "Model A", catalog.DisplayName("a"))
	assert.Equal(t, "unknown", catalog.DisplayName("unknown"))
}
