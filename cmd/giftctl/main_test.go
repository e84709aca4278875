package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osdfir/giftctl/pkg/manifest"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()

	assert.Equal(t, "giftctl", rootCmd.Use)
	assert.Equal(t, "GIFT COPR dependency installer", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmdHelp(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "giftctl")
	assert.Contains(t, output, "install")
	assert.Contains(t, output, "packages")
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "validate")
	assert.Contains(t, output, "doctor")
	assert.Contains(t, output, "history")
}

func TestRootCmdVersion(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--version"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "giftctl version")
}

func TestInstallCmd_SelectedCategories(t *testing.T) {
	opts := &installOptions{includeDebug: true}

	selected := opts.selectedCategories([]string{"include-test"})

	// Flags and tokens merge; install order stays fixed.
	assert.Equal(t, []manifest.Category{manifest.CategoryDebug, manifest.CategoryTest}, selected)
}

func TestInstallCmd_NoSelection(t *testing.T) {
	opts := &installOptions{}

	assert.Empty(t, opts.selectedCategories([]string{"unrelated", "args"}))
}

func TestInstallCmd_FlagAndTokenOverlap(t *testing.T) {
	opts := &installOptions{includeTest: true}

	selected := opts.selectedCategories([]string{"include-test"})

	assert.Equal(t, []manifest.Category{manifest.CategoryTest}, selected)
}

func TestLoadManifest_Default(t *testing.T) {
	m, err := loadManifest("")
	require.NoError(t, err)
	assert.NotEmpty(t, m.Packages(manifest.CategoryRuntime))
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := loadManifest("/does/not/exist.yaml")
	assert.Error(t, err)
}
