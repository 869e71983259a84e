// Package workspace locates the project root and derives naming defaults
// from the surrounding git repository.
package workspace

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	separatorRunRegex = regexp.MustCompile(`[/:\\@\s]+`)
	unsafeCharRegex   = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	hyphenRunRegex    = regexp.MustCompile(`-+`)
)

// Derived names feed file paths and build settings, so keep them short.
const maxNameLength = 100

// Root returns the git workspace root containing path, or path itself when
// not inside a git repository.
func Root(path string) (string, error) {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		// Not a git repo, use the provided path
		return filepath.Abs(path)
	}
	return strings.TrimSpace(string(output)), nil
}

// ProjectName derives a default project name from the root directory name.
func ProjectName(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}
	return SanitizeName(filepath.Base(abs)), nil
}

// BundleIdentifier derives a default product bundle identifier. It prefers
// the git remote (com.<owner>.<repo>) and falls back to com.<name>.app.
func BundleIdentifier(root, name string) string {
	cmd := exec.Command("git", "-C", root, "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err == nil {
		if owner, repo, ok := splitRemote(strings.TrimSpace(string(output))); ok {
			return fmt.Sprintf("com.%s.%s", strings.ToLower(owner), strings.ToLower(repo))
		}
	}
	return fmt.Sprintf("com.%s.app", strings.ToLower(SanitizeName(name)))
}

// splitRemote extracts the owner and repository segments from a git remote
// URL. Handles https://host/owner/repo.git and git@host:owner/repo.git.
func splitRemote(url string) (owner, repo string, ok bool) {
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "git://")

	if strings.HasPrefix(url, "git@") {
		url = strings.TrimPrefix(url, "git@")
		url = strings.Replace(url, ":", "/", 1)
	}
	url = strings.TrimSuffix(url, ".git")

	parts := strings.Split(url, "/")
	if len(parts) < 3 {
		return "", "", false
	}
	owner = SanitizeName(parts[len(parts)-2])
	repo = SanitizeName(parts[len(parts)-1])
	if owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}

// SanitizeName converts a string to a name safe for file paths and build
// settings: separators and whitespace become single hyphens, anything else
// unsafe is dropped, and the result is trimmed and length-capped.
func SanitizeName(name string) string {
	name = separatorRunRegex.ReplaceAllString(name, "-")
	name = unsafeCharRegex.ReplaceAllString(name, "")
	name = hyphenRunRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if len(name) > maxNameLength {
		name = strings.TrimRight(name[:maxNameLength], "-")
	}
	if name == "" {
		return "Untitled"
	}
	return name
}
