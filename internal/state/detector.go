package state

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeanhaley32/pbxgen/internal/collector"
	"github.com/jeanhaley32/pbxgen/internal/config"
	"github.com/jeanhaley32/pbxgen/internal/constants"
)

// Timeout for state detection commands
const stateCheckTimeout = 10 * time.Second

// ProjectState represents what pbxgen can see of the project on disk.
type ProjectState struct {
	Root              string
	ProjectFilePath   string
	ProjectFileExists bool
	ConfigFilePath    string
	ConfigFileExists  bool
	SourceCount       int
	InGitRepo         bool
}

// Detector probes the project state for the status command.
type Detector struct {
	root string
	cfg  config.Config
}

// NewDetector creates a new state detector.
func NewDetector(root string, cfg config.Config) *Detector {
	return &Detector{root: root, cfg: cfg}
}

// Detect checks all aspects of the project state. Probe failures degrade to
// "absent" rather than erroring; status is informational only.
func (d *Detector) Detect() *ProjectState {
	state := &ProjectState{
		Root:            d.root,
		ProjectFilePath: filepath.Join(d.root, d.cfg.OutputPath()),
		ConfigFilePath:  filepath.Join(d.root, constants.ConfigFileName),
	}

	if _, err := os.Stat(state.ProjectFilePath); err == nil {
		state.ProjectFileExists = true
	}
	if _, err := os.Stat(state.ConfigFilePath); err == nil {
		state.ConfigFileExists = true
	}

	if paths, err := collector.Collect(d.root, collector.Options{
		Extension:    d.cfg.Extension,
		ExcludedDirs: constants.ExcludedDirs,
	}); err == nil {
		state.SourceCount = len(paths)
	}

	state.InGitRepo = d.checkGitRepo()

	return state
}

// checkGitRepo reports whether the root sits inside a git work tree.
func (d *Detector) checkGitRepo() bool {
	ctx, cancel := context.WithTimeout(context.Background(), stateCheckTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "-C", d.root, "rev-parse", "--is-inside-work-tree")
	output, err := cmd.Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}
