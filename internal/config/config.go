// Package config carries the per-project settings that shape the generated
// manifest. Settings come from built-in defaults, optionally overlaid by a
// .pbxgen.json file at the project root.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/jeanhaley32/pbxgen/internal/constants"
)

// Config holds everything the manifest needs beyond the collected file list.
type Config struct {
	// ProjectName names the project, the target and the built product.
	ProjectName string

	// SourceDir is the top-level source folder. Defaults to ProjectName.
	SourceDir string

	// Extension recognizes source files, e.g. ".swift".
	Extension string

	// BundleIdentifier is the PRODUCT_BUNDLE_IDENTIFIER build setting.
	BundleIdentifier string

	// DisplayName is the human-readable application name.
	DisplayName string

	// DeploymentTarget is the minimum macOS version.
	DeploymentTarget string

	// MarketingVersion is the user-facing version number.
	MarketingVersion string
}

// Default returns the built-in configuration for the given project name.
func Default(name string) Config {
	return Config{
		ProjectName:      name,
		SourceDir:        name,
		Extension:        constants.SourceExtension,
		BundleIdentifier: fmt.Sprintf("com.%s.app", strings.ToLower(name)),
		DisplayName:      name,
		DeploymentTarget: "14.0",
		MarketingVersion: "0.1.0",
	}
}

// OutputPath returns the manifest path relative to the project root,
// e.g. "Tonic.xcodeproj/project.pbxproj".
func (c Config) OutputPath() string {
	return filepath.Join(c.ProjectName+constants.ProjectDirSuffix, constants.ProjectFileName)
}

// Load reads the config file at path and overlays it on base. When required
// is false a missing file just returns base unchanged, which fits the
// discovered .pbxgen.json at the project root; a path the user named
// explicitly should be loaded with required true so a typo fails loudly.
func Load(path string, base Config, required bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return base, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Config{}, fmt.Errorf("config file %s is not valid JSON", path)
	}

	cfg := base

	// The project name doubles as the source directory default, so apply it
	// first and let an explicit sourceDir override win afterwards.
	if v := gjson.GetBytes(data, "project.name"); v.Exists() {
		cfg.ProjectName = v.String()
		cfg.SourceDir = v.String()
	}

	overlay := func(key string, dst *string) {
		if v := gjson.GetBytes(data, key); v.Exists() {
			*dst = v.String()
		}
	}
	overlay("project.sourceDir", &cfg.SourceDir)
	overlay("project.extension", &cfg.Extension)
	overlay("project.bundleIdentifier", &cfg.BundleIdentifier)
	overlay("project.displayName", &cfg.DisplayName)
	overlay("build.deploymentTarget", &cfg.DeploymentTarget)
	overlay("build.marketingVersion", &cfg.MarketingVersion)

	return cfg, nil
}

// WriteDefault writes cfg as a starter config file at path. It refuses to
// clobber an existing file.
func WriteDefault(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	out := ""
	var err error
	for _, kv := range []struct{ key, val string }{
		{"project.name", cfg.ProjectName},
		{"project.sourceDir", cfg.SourceDir},
		{"project.extension", cfg.Extension},
		{"project.bundleIdentifier", cfg.BundleIdentifier},
		{"project.displayName", cfg.DisplayName},
		{"build.deploymentTarget", cfg.DeploymentTarget},
		{"build.marketingVersion", cfg.MarketingVersion},
	} {
		out, err = sjson.Set(out, kv.key, kv.val)
		if err != nil {
			return fmt.Errorf("failed to build config document: %w", err)
		}
	}

	return os.WriteFile(path, []byte(out+"\n"), constants.FilePermissions)
}
