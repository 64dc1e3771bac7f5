package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600), "failed to set up test file")
	return path
}

func TestRun_PrintsEnumerations(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, "colors.hcl", `
enumeration "MainColor" {
  attribute "hex" { type = string }

  member "RED"   { hex = "#ff0000" }
  member "GREEN" {
    description = "green"
    hex         = "#00ff00"
  }
}
`)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{path})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "MainColor (2 members)")
	require.Contains(t, out.String(), "MainColor.RED")
	require.Contains(t, out.String(), `"green"`)
	require.Contains(t, out.String(), `{"hex":"#00ff00"}`)
}

func TestRun_OnlyUnknownEnumeration(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "suits.hcl", `
enumeration "MainSuit" {
  member "HEARTS" {}
}
`)

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-only", "Nope", path})

	require.Error(t, err)
	require.Contains(t, err.Error(), `enumeration "Nope" not found`)
}

func TestRun_LoadError(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "broken.hcl", `
		enumeration "MainBroken" {
			member "A" {
		// Missing closing brace here
	`)

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load enumerations")
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
