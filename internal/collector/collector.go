// Package collector walks a project tree and gathers the relative paths of
// recognized source files.
package collector

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jeanhaley32/pbxgen/internal/constants"
)

// Options controls which files Collect recognizes.
type Options struct {
	// Extension recognizes source files by name suffix, e.g. ".swift".
	Extension string

	// ExcludedDirs are directory names that are never descended into.
	ExcludedDirs []string
}

// DefaultOptions returns the built-in collection rules.
func DefaultOptions() Options {
	return Options{
		Extension:    constants.SourceExtension,
		ExcludedDirs: constants.ExcludedDirs,
	}
}

// Collect returns the sorted, de-duplicated relative paths of all recognized
// source files beneath root. Paths use forward slashes regardless of
// platform so that derived identifiers are stable across machines. Traversal
// errors propagate unwrapped; nothing is collected partially.
func Collect(root string, opts Options) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && excluded(d.Name(), opts.ExcludedDirs) {
				slog.Debug("skipping directory", "dir", d.Name())
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), opts.Extension) {
			return nil
		}
		if d.Name() == constants.PackageManifestFile {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if _, dup := seen[rel]; dup {
			return nil
		}
		seen[rel] = struct{}{}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// excluded reports whether a directory name is on the exclusion list. Any
// project bundle directory is excluded regardless of the project name.
func excluded(name string, dirs []string) bool {
	if strings.HasSuffix(name, constants.ProjectDirSuffix) {
		return true
	}
	for _, d := range dirs {
		if name == d {
			return true
		}
	}
	return false
}
