// Package manifest provides the declarative package catalog: four named
// categories of OS packages and the rules for selecting them.
package manifest

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category identifies a selectable package group.
type Category string

const (
	// CategoryRuntime packages are always installed.
	CategoryRuntime Category = "runtime"
	// CategoryDebug packages are installed when debug support is requested.
	CategoryDebug Category = "debug"
	// CategoryDevelopment packages are installed for development work.
	CategoryDevelopment Category = "development"
	// CategoryTest packages are installed for running the test suite.
	CategoryTest Category = "test"
)

// OptionalCategories lists the selectable categories in install order.
// Install order is fixed regardless of the order flags were given in.
var OptionalCategories = []Category{CategoryDebug, CategoryDevelopment, CategoryTest}

// Known reports whether c is one of the four defined categories.
func (c Category) Known() bool {
	switch c {
	case CategoryRuntime, CategoryDebug, CategoryDevelopment, CategoryTest:
		return true
	}
	return false
}

// Manifest is the declarative form of the install script: a repository to
// enable plus a package list per category. Manifests are immutable after
// load; selection never modifies the underlying lists.
type Manifest struct {
	// Repository is the COPR project to enable before installing,
	// e.g. "@gift/dev".
	Repository string `yaml:"repository"`

	// Installer is the package manager command. Only dnf is generated
	// today but the manifest carries it so generated scripts stay honest.
	Installer string `yaml:"installer"`

	// Categories maps each category to its alphabetized package list.
	Categories map[Category][]string `yaml:"categories"`
}

// Parse decodes a manifest from YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.Repository == "" {
		m.Repository = DefaultRepository
	}
	if m.Installer == "" {
		m.Installer = DefaultInstaller
	}

	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Packages returns the package list for a category. The returned slice is a
// copy; callers may not reach the manifest's own lists through it.
func (m *Manifest) Packages(c Category) []string {
	pkgs := m.Categories[c]
	out := make([]string, len(pkgs))
	copy(out, pkgs)
	return out
}

// Select returns the full install set for the given optional categories:
// the runtime list followed by each selected optional list in install order.
// Passing no categories yields exactly the runtime list. The result is
// deterministic for a given manifest and selection.
func (m *Manifest) Select(selected []Category) []string {
	want := make(map[Category]bool, len(selected))
	for _, c := range selected {
		want[c] = true
	}

	result := m.Packages(CategoryRuntime)
	for _, c := range OptionalCategories {
		if want[c] {
			result = append(result, m.Categories[c]...)
		}
	}
	return result
}

// Issue describes a single manifest validation finding.
type Issue struct {
	Category Category
	Message  string
}

func (i Issue) String() string {
	if i.Category == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Category, i.Message)
}

// Validate checks configuration fidelity: known categories only, a non-empty
// runtime list, no duplicate entries, no blank names, and alphabetized lists.
func (m *Manifest) Validate() []Issue {
	var issues []Issue

	if m.Repository == "" {
		issues = append(issues, Issue{Message: "repository must not be empty"})
	}

	for c := range m.Categories {
		if !c.Known() {
			issues = append(issues, Issue{Category: c, Message: "unknown category"})
		}
	}

	if len(m.Categories[CategoryRuntime]) == 0 {
		issues = append(issues, Issue{Category: CategoryRuntime, Message: "package list must not be empty"})
	}

	for _, c := range append([]Category{CategoryRuntime}, OptionalCategories...) {
		pkgs := m.Categories[c]

		seen := make(map[string]bool, len(pkgs))
		for _, name := range pkgs {
			if strings.TrimSpace(name) == "" {
				issues = append(issues, Issue{Category: c, Message: "blank package name"})
				continue
			}
			if seen[name] {
				issues = append(issues, Issue{Category: c, Message: fmt.Sprintf("duplicate package %q", name)})
			}
			seen[name] = true
		}

		if !sort.StringsAreSorted(pkgs) {
			issues = append(issues, Issue{Category: c, Message: "package list is not alphabetized"})
		}
	}

	return issues
}
