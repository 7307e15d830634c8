package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wakabuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, "data:\n  directory: ./content-data\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./content-data", cfg.Data.Directory)
	require.Equal(t, "./template.html", cfg.Template)
	require.Equal(t, "./output/hautu-waka.html", cfg.Output.File)
	require.Equal(t, ReferencesDrop, cfg.Render.References)
	require.Equal(t, PlaceholdersStrict, cfg.Render.Placeholders)
	require.False(t, cfg.Render.Markdown)
	require.Equal(t, 8080, cfg.Preview.Port)
	require.Equal(t, 300*time.Millisecond, cfg.Preview.Debounce.Std())
}

func TestLoad_PoliciesParsed(t *testing.T) {
	path := writeConfig(t, `
render:
  references: strict
  placeholders: lenient
  markdown: true
preview:
  port: 9999
  debounce: 1s
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ReferencesStrict, cfg.Render.References)
	require.Equal(t, PlaceholdersLenient, cfg.Render.Placeholders)
	require.True(t, cfg.Render.Markdown)
	require.Equal(t, 9999, cfg.Preview.Port)
	require.Equal(t, time.Second, cfg.Preview.Debounce.Std())
}

func TestLoad_InvalidReferencePolicy_Fails(t *testing.T) {
	path := writeConfig(t, "render:\n  references: maybe\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "render.references")
}

func TestLoad_InvalidPlaceholderPolicy_Fails(t *testing.T) {
	path := writeConfig(t, "render:\n  placeholders: never\n")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "render.placeholders")
}

func TestLoad_MissingFile_Fails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("WAKABUILD_TEST_DIR", "/tmp/records")
	path := writeConfig(t, "data:\n  directory: ${WAKABUILD_TEST_DIR}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/records", cfg.Data.Directory)
}

func TestInit_WritesExampleAndRespectsForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wakabuild.yaml")

	require.NoError(t, Init(path, false))
	require.FileExists(t, path)

	// Second init without force refuses to overwrite.
	err := Init(path, false)
	require.Error(t, err)
	require.NoError(t, Init(path, true))

	// The scaffold itself must load cleanly.
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ReferencesDrop, cfg.Render.References)
}

func TestDefault_MatchesAppliedDefaults(t *testing.T) {
	cfg := Default()
	require.Equal(t, "./data", cfg.Data.Directory)
	require.Equal(t, PlaceholdersStrict, cfg.Render.Placeholders)
}
