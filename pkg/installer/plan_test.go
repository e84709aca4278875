package installer

import (
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

func TestBuild_BaseOnly(t *testing.T) {
	plan := Build(testManifest(), nil)

	require.Len(t, plan.Steps, 3)
	assert.Equal(t, StepEnablePlugins, plan.Steps[0].Kind)
	assert.Equal(t, StepEnableRepository, plan.Steps[1].Kind)
	assert.Equal(t, StepInstall, plan.Steps[2].Kind)
	assert.Equal(t, manifest.CategoryRuntime, plan.Steps[2].Category)

	assert.Equal(t, "sudo dnf install -y dnf-plugins-core", plan.Steps[0].Command())
	assert.Equal(t, "sudo dnf copr -y enable @gift/dev", plan.Steps[1].Command())
	assert.Equal(t, "sudo dnf install -y libalpha libbeta", plan.Steps[2].Command())

	assert.Empty(t, plan.Selected)
	assert.NotEmpty(t, plan.RunID)
}

func TestBuild_AllCategories(t *testing.T) {
	plan := Build(testManifest(), []manifest.Category{
		manifest.CategoryTest, manifest.CategoryDebug, manifest.CategoryDevelopment,
	})

	require.Len(t, plan.Steps, 6)

	// Optional categories install in fixed order regardless of selection order.
	assert.Equal(t, manifest.CategoryRuntime, plan.Steps[2].Category)
	assert.Equal(t, manifest.CategoryDebug, plan.Steps[3].Category)
	assert.Equal(t, manifest.CategoryDevelopment, plan.Steps[4].Category)
	assert.Equal(t, manifest.CategoryTest, plan.Steps[5].Category)

	assert.Equal(t, []manifest.Category{
		manifest.CategoryDebug, manifest.CategoryDevelopment, manifest.CategoryTest,
	}, plan.Selected)
}

func TestBuild_Deterministic(t *testing.T) {
	m := testManifest()
	selected := []manifest.Category{manifest.CategoryDebug}

	a := Build(m, selected)
	b := Build(m, selected)

	// Run ids differ, the command sequence does not.
	require.Len(t, b.Steps, len(a.Steps))
	for i := range a.Steps {
		assert.Equal(t, a.Steps[i].Command(), b.Steps[i].Command())
	}
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestPlan_Packages(t *testing.T) {
	plan := Build(testManifest(), []manifest.Category{manifest.CategoryTest})

	assert.Equal(t, []string{"libalpha", "libbeta", "python3-mock"}, plan.Packages())
	assert.Equal(t, 3, plan.PackageCount())
}

func TestStep_Description(t *testing.T) {
	plan := Build(testManifest(), []manifest.Category{manifest.CategoryDebug})

	assert.Equal(t, "install repository plugins", plan.Steps[0].Description())
	assert.Equal(t, "enable repository", plan.Steps[1].Description())
	assert.Equal(t, "install runtime packages (2)", plan.Steps[2].Description())
	assert.Equal(t, "install debug packages (1)", plan.Steps[3].Description())
}
