// Package generator drives the collect, classify, build, serialize, write
// pipeline. One linear pass, no retries, no partial state.
package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jeanhaley32/pbxgen/internal/collector"
	"github.com/jeanhaley32/pbxgen/internal/config"
	"github.com/jeanhaley32/pbxgen/internal/constants"
	"github.com/jeanhaley32/pbxgen/internal/pbx"
)

// Result reports what a run produced.
type Result struct {
	OutputPath  string
	SourceCount int
}

// Run regenerates the project manifest under root. The full manifest text is
// assembled in memory before anything touches disk, so a failed run never
// leaves a partial project file behind.
func Run(root string, cfg config.Config) (*Result, error) {
	paths, err := collector.Collect(root, collector.Options{
		Extension:    cfg.Extension,
		ExcludedDirs: constants.ExcludedDirs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect sources: %w", err)
	}
	slog.Debug("collected sources", "count", len(paths), "root", root)

	project := pbx.Build(paths, pbx.BuildOptions{
		Name:             cfg.ProjectName,
		SourceDir:        cfg.SourceDir,
		DisplayName:      cfg.DisplayName,
		Extension:        cfg.Extension,
		BundleIdentifier: cfg.BundleIdentifier,
		DeploymentTarget: cfg.DeploymentTarget,
		MarketingVersion: cfg.MarketingVersion,
	})
	text := project.Serialize()

	outPath := filepath.Join(root, cfg.OutputPath())
	if err := os.MkdirAll(filepath.Dir(outPath), constants.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(text), constants.FilePermissions); err != nil {
		return nil, fmt.Errorf("failed to write project file: %w", err)
	}

	return &Result{OutputPath: outPath, SourceCount: len(paths)}, nil
}
