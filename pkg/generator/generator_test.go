package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osdfir/giftctl/pkg/manifest"
)

func testManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Repository: "@gift/dev",
		Installer:  "dnf",
		Categories: map[manifest.Category][]string{
			manifest.CategoryRuntime:     {"libalpha", "libbeta"},
			manifest.CategoryDebug:       {"libalpha-debuginfo"},
			manifest.CategoryDevelopment: {"pylint"},
			manifest.CategoryTest:        {"python3-mock"},
		},
	}
}

func TestRender(t *testing.T) {
	script := Render(testManifest())

	assert.True(t, strings.HasPrefix(script, "#!/usr/bin/env bash"))
	assert.Contains(t, script, "set -e")

	assert.Contains(t, script, `RUNTIME_DEPENDENCIES="libalpha libbeta";`)
	assert.Contains(t, script, `DEBUG_DEPENDENCIES="libalpha-debuginfo";`)
	assert.Contains(t, script, `DEVELOPMENT_DEPENDENCIES="pylint";`)
	assert.Contains(t, script, `TEST_DEPENDENCIES="python3-mock";`)

	assert.Contains(t, script, "sudo dnf install -y dnf-plugins-core")
	assert.Contains(t, script, "sudo dnf copr -y enable @gift/dev")

	// Selection guards mirror the CLI tokens.
	assert.Contains(t, script, `[[ "$*" =~ "include-debug" ]]`)
	assert.Contains(t, script, `[[ "$*" =~ "include-development" ]]`)
	assert.Contains(t, script, `[[ "$*" =~ "include-test" ]]`)
}

func TestRender_ShellVariablesSurvive(t *testing.T) {
	script := Render(testManifest())

	// Placeholders are substituted, shell variable references are not.
	assert.NotContains(t, script, "${RUNTIME_PACKAGES}")
	assert.NotContains(t, script, "${REPOSITORY}")
	assert.NotContains(t, script, "${INSTALLER}")
	assert.Contains(t, script, "${RUNTIME_DEPENDENCIES}")
	assert.Contains(t, script, "${DEBUG_DEPENDENCIES}")
}

func TestRender_Deterministic(t *testing.T) {
	m := testManifest()

	assert.Equal(t, Render(m), Render(m))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "scripts", "install.sh")

	err := Generate(testManifest(), outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, Render(testManifest()), string(data))
}
