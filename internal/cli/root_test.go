package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "ijkvectors", cmd.Use)

	sub, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)
	assert.Equal(t, "generate", sub.Name())

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestGenerateTextMatchesGolden(t *testing.T) {
	stdout, _, err := execute(t, "generate", "--radius", "1", "--format", "text")
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "vectors", "testdata", "golden", "radius1.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), stdout)
}

func TestGenerateFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "vectors.txt")
	cfgPath := filepath.Join(dir, "vectors.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
vectors:
  radius: 1
  orientations: [rotated]
  format: text
  output: `+out+`
log:
  level: error
`), 0644))

	stdout, stderr, err := execute(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# radius=1 orientations=rotated\n")
	assert.Equal(t, 9, bytes.Count(data, []byte("\n")))
}

func TestGenerateVerboseLogs(t *testing.T) {
	_, stderr, err := execute(t, "generate", "-v", "--radius", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration loaded")
	assert.Contains(t, stderr, "vectors written")
}

func TestGenerateExitCodes(t *testing.T) {
	_, _, err := execute(t, "generate", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "generate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "bad", nil)))
	assert.Equal(t, "bad: boom", WrapExitError(ExitCommandError, "bad", errors.New("boom")).Error())
}
