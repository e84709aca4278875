package doctor

import (
	"bytes"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// CommandExecutor is an interface for executing commands, allowing for testing.
type CommandExecutor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) (string, error)
	ReadFile(path string) ([]byte, error)
}

// RealExecutor is the default command executor that uses the real system.
type RealExecutor struct{}

// LookPath finds the path to an executable.
func (e *RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *RealExecutor) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		// Some tools print diagnostics to stderr
		if stderr.Len() > 0 {
			return stderr.String(), err
		}
		return stdout.String(), err
	}
	output := stdout.String()
	if output == "" {
		output = stderr.String()
	}
	return output, nil
}

// ReadFile reads a file from the real filesystem.
func (e *RealExecutor) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

var dnfVersionRe = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// CheckDnf checks if the dnf package manager is installed.
func CheckDnf(exec CommandExecutor) Check {
	check := Check{
		ID:          IDDnf,
		Name:        "dnf",
		Description: "Fedora package manager",
	}

	path, err := exec.LookPath("dnf")
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	output, err := exec.Run(path, "--version")
	if err != nil {
		check.Status = StatusOK
		check.Message = "installed (version unknown)"
		return check
	}

	if matches := dnfVersionRe.FindStringSubmatch(output); len(matches) >= 2 {
		check.Status = StatusOK
		check.Message = matches[1]
	} else {
		check.Status = StatusOK
		check.Message = "installed"
	}

	return check
}

// CheckCoprPlugin checks if the dnf copr plugin is available. The plugin
// ships in dnf-plugins-core, which the installer sets up itself, so a
// missing plugin is a warning rather than a hard failure.
func CheckCoprPlugin(exec CommandExecutor) Check {
	check := Check{
		ID:          IDCoprPlugin,
		Name:        "dnf copr plugin",
		Description: "Enables COPR repositories",
		FixCommand: &FixCommand{
			Description: "Install dnf-plugins-core",
			Command:     "sudo dnf install -y dnf-plugins-core",
			Sudo:        true,
		},
	}

	if _, err := exec.LookPath("dnf"); err != nil {
		check.Status = StatusError
		check.Message = "dnf not installed"
		return check
	}

	if _, err := exec.Run("dnf", "copr", "--help"); err != nil {
		check.Status = StatusWarning
		check.Message = "not installed (set up automatically during install)"
		return check
	}

	check.Status = StatusOK
	check.Message = "available"
	return check
}

// CheckSudo checks if sudo is installed.
func CheckSudo(exec CommandExecutor) Check {
	check := Check{
		ID:          IDSudo,
		Name:        "sudo",
		Description: "Required to run the package manager",
	}

	if _, err := exec.LookPath("sudo"); err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	check.Status = StatusOK
	check.Message = "installed"
	return check
}

var osReleaseIDRe = regexp.MustCompile(`(?m)^ID=["']?([a-z0-9._-]+)["']?$`)

// fedoraFamily lists distribution IDs the GIFT COPR repository targets.
var fedoraFamily = map[string]bool{
	"fedora": true,
	"rhel":   true,
	"centos": true,
	"rocky":  true,
	"alma":   true,
}

// CheckOSRelease checks /etc/os-release for a Fedora-family distribution.
func CheckOSRelease(exec CommandExecutor) Check {
	check := Check{
		ID:          IDOSRelease,
		Name:        "Operating system",
		Description: "COPR packages target Fedora-family distributions",
	}

	data, err := exec.ReadFile("/etc/os-release")
	if err != nil {
		check.Status = StatusWarning
		check.Message = "could not read /etc/os-release"
		return check
	}

	matches := osReleaseIDRe.FindStringSubmatch(string(data))
	if len(matches) < 2 {
		check.Status = StatusWarning
		check.Message = "unknown distribution"
		return check
	}

	id := strings.ToLower(matches[1])
	if !fedoraFamily[id] {
		check.Status = StatusWarning
		check.Message = id + " (packages are built for Fedora-family systems)"
		return check
	}

	check.Status = StatusOK
	check.Message = id
	return check
}
