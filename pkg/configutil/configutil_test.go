package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Language string            `json:"language"`
	Timeout  int               `json:"timeout"`
	Headers  map[string]string `json:"headers"`
}

func writeFile(t *testing.T, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0644)
	if err != nil {
		t.Fatal(err)
	}
}

func TestLocalName(t *testing.T) {
	require.Equal(t, "steamscraper.local.json5", localName("steamscraper.json5"))
	require.Equal(t, filepath.Join("a", "b.local.json"), localName(filepath.Join("a", "b.json")))
	require.Equal(t, "config.local", localName("config"))
}

func TestReadConfigMissing(t *testing.T) {
	base := testConfig{Language: "english", Timeout: 10}
	cfg, err := ReadConfig(filepath.Join(t.TempDir(), "steamscraper.json5"), base)
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.Equal(t, base, cfg)
}

func TestReadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "steamscraper.json5")

	writeFile(t, name, `{
		// comments and trailing commas are allowed
		language: "schinese",
		headers: { "Referer": "https://www.google.com/" },
	}`)
	writeFile(t, localName(name), `{ timeout: 30 }`)

	cfg, err := ReadConfig(name, testConfig{Language: "english", Timeout: 10})
	require.NoError(t, err)
	require.Equal(t, "schinese", cfg.Language)
	require.Equal(t, 30, cfg.Timeout)
	require.Equal(t, "https://www.google.com/", cfg.Headers["Referer"])
}

func TestReadConfigOnlyLocal(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "steamscraper.json5")
	writeFile(t, localName(name), `{ language: "german" }`)

	cfg, err := ReadConfig(name, testConfig{Language: "english", Timeout: 10})
	require.NoError(t, err)
	require.Equal(t, testConfig{Language: "german", Timeout: 10}, cfg)
}

func TestReadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "steamscraper.json5")
	writeFile(t, name, `{ language: `)

	base := testConfig{Language: "english"}
	cfg, err := ReadConfig(name, base)
	require.Error(t, err)
	require.False(t, errors.Is(err, os.ErrNotExist))
	require.Equal(t, base, cfg)
}
