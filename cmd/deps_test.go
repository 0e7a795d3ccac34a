package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizai/internal/quiz"
)

// testCommand builds a command carrying the root persistent flags, pointed
// at a temporary database and an empty config directory.
func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"QUIZAI_LLM_PROVIDER", "QUIZAI_LLM_GEMINI_API_KEY", "QUIZAI_LLM_OPENAI_API_KEY", "QUIZAI_LLM_ANTHROPIC_API_KEY",
		"QUIZAI_LLM_OPENROUTER_API_KEY", "QUIZAI_CACHE_REDIS_ADDR"} {
		t.Setenv(k, "")
	}

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("db", filepath.Join(dir, "quizai.db"), "")
	cmd.Flags().String("log-level", "", "")
	cmd.SetContext(context.Background())
	return cmd
}

func TestOpenDeps_ExplicitProviderWithoutKey(t *testing.T) {
	cmd := testCommand(t)
	t.Setenv("QUIZAI_LLM_PROVIDER", "openai")

	d, err := openDeps(cmd, false)
	require.Error(t, err)
	assert.Nil(t, d)
	assert.Contains(t, err.Error(), "QUIZAI_LLM_OPENAI_API_KEY")
}

func TestOpenDeps_UnknownProvider(t *testing.T) {
	cmd := testCommand(t)
	t.Setenv("QUIZAI_LLM_PROVIDER", "bard")

	_, err := openDeps(cmd, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}

func TestOpenDeps_NothingConfigured(t *testing.T) {
	cmd := testCommand(t)

	d, err := openDeps(cmd, false)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	assert.Empty(t, d.svc.Model())

	q, err := d.svc.Generate(cmd.Context(), quiz.GenerateInput{Topic: "anything"}, false)
	require.NoError(t, err)
	assert.True(t, q.IsEmpty())
}

func TestOpenDeps_MockProvider(t *testing.T) {
	cmd := testCommand(t)
	t.Setenv("QUIZAI_LLM_PROVIDER", "mock")

	d, err := openDeps(cmd, false)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	assert.Equal(t, "mock", d.svc.Model())
}
