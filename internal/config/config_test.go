package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "noticias.db", cfg.Database.Path)
	assert.Equal(t, "ontologias", cfg.RDF.OutputDir)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = "8080"

[rdf]
output_dir = "/var/lib/ontologias"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/var/lib/ontologias", cfg.RDF.OutputDir)
	// Sections absent from the file keep their defaults.
	assert.Equal(t, "noticias.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-existe.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("esto no es toml ="), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
