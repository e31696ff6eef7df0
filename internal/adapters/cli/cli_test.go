package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "migrate", "consume", "config", "health"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestConfigShow_RedactsSecrets(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  type: postgres
  url: postgresql://app:hunter2@db:5432/basketball
auth:
  secret: "a-very-long-secret-value-that-is-32-bytes"
`), 0o644))

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "show", "--config", path})

	// Act
	require.NoError(t, root.Execute())

	// Assert
	assert.Contains(t, out.String(), "postgresql://app:xxxxx@db:5432/basketball")
	assert.NotContains(t, out.String(), "hunter2")
	assert.NotContains(t, out.String(), "a-very-long-secret")
	assert.Contains(t, out.String(), "player-created")
}

func TestMaskPassword(t *testing.T) {
	assert.Equal(t, "postgresql://u:xxxxx@h/db", maskPassword("postgresql://u:p@h/db"))
	assert.Equal(t, "postgresql://h/db", maskPassword("postgresql://h/db"))
}
