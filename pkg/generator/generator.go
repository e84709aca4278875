// Package generator renders a standalone install script from a package
// manifest. The script is the portable equivalent of `giftctl install`:
// it needs nothing but bash and the package manager on the target host.
package generator

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osdfir/giftctl/pkg/manifest"
)

// scriptTemplate is the install script with ${VAR} placeholders. Shell
// variables in the script share the same syntax; only the keys produced by
// manifestToVars are substituted, everything else is left for the shell.
//
//go:embed script.sh.tmpl
var scriptTemplate string

// Render produces the install script for a manifest. Output is
// deterministic: identical manifests render byte-identical scripts.
func Render(m *manifest.Manifest) string {
	return substituteVars(scriptTemplate, manifestToVars(m))
}

// Generate renders the install script and writes it to outputPath with the
// executable bit set.
func Generate(m *manifest.Manifest, outputPath string) error {
	output := Render(m)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(output), 0755); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}

	return nil
}

// manifestToVars builds the substitution map for a manifest.
func manifestToVars(m *manifest.Manifest) map[string]string {
	return map[string]string{
		"REPOSITORY":           m.Repository,
		"INSTALLER":            m.Installer,
		"RUNTIME_PACKAGES":     strings.Join(m.Packages(manifest.CategoryRuntime), " "),
		"DEBUG_PACKAGES":       strings.Join(m.Packages(manifest.CategoryDebug), " "),
		"DEVELOPMENT_PACKAGES": strings.Join(m.Packages(manifest.CategoryDevelopment), " "),
		"TEST_PACKAGES":        strings.Join(m.Packages(manifest.CategoryTest), " "),
	}
}

// substituteVars replaces ${KEY} placeholders with their values.
func substituteVars(template string, vars map[string]string) string {
	output := template
	for key, value := range vars {
		output = strings.ReplaceAll(output, "${"+key+"}", value)
	}
	return output
}
