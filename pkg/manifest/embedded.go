package manifest

import _ "embed"

// DefaultRepository is the COPR project enabled before installing.
const DefaultRepository = "@gift/dev"

// DefaultInstaller is the package manager used when the manifest omits one.
const DefaultInstaller = "dnf"

// defaultManifest contains the built-in package catalog. An external
// manifest file overrides it when passed via --manifest.
//
//go:embed packages.yaml
var defaultManifest []byte

// Default returns the built-in manifest. The embedded catalog is validated
// by tests, so a parse failure here means a broken build.
func Default() (*Manifest, error) {
	return Parse(defaultManifest)
}
