package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeanhaley32/pbxgen/internal/config"
)

func writeSource(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte("// source\n"), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
}

func TestRun_WritesProjectFile(t *testing.T) {
	tmp := t.TempDir()
	writeSource(t, tmp, "Tonic/App.swift")
	writeSource(t, tmp, "Tonic/Models/User.swift")

	result, err := Run(tmp, config.Default("Tonic"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantPath := filepath.Join(tmp, "Tonic.xcodeproj", "project.pbxproj")
	if result.OutputPath != wantPath {
		t.Errorf("OutputPath = %v, want %v", result.OutputPath, wantPath)
	}
	if result.SourceCount != 2 {
		t.Errorf("SourceCount = %d, want 2", result.SourceCount)
	}

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "// !$*UTF8*$!") {
		t.Errorf("output missing manifest header")
	}
}

func TestRun_Deterministic(t *testing.T) {
	tmp := t.TempDir()
	writeSource(t, tmp, "Tonic/App.swift")
	writeSource(t, tmp, "Tonic/Models/User.swift")
	writeSource(t, tmp, "Tonic/Views/Main.swift")

	cfg := config.Default("Tonic")

	first, err := Run(tmp, cfg)
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	a, err := os.ReadFile(first.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read first output: %v", err)
	}

	second, err := Run(tmp, cfg)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	b, err := os.ReadFile(second.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read second output: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("consecutive runs on an unchanged tree produced different output")
	}
}

func TestRun_ExcludedFilesNeverAppear(t *testing.T) {
	tmp := t.TempDir()
	writeSource(t, tmp, "Tonic/App.swift")
	writeSource(t, tmp, ".build/generated/Forbidden.swift")

	result, err := Run(tmp, config.Default("Tonic"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.SourceCount != 1 {
		t.Errorf("SourceCount = %d, want 1", result.SourceCount)
	}

	data, err := os.ReadFile(result.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if strings.Contains(string(data), "Forbidden.swift") {
		t.Error("excluded file appears in the manifest")
	}
}

func TestRun_RegenerateSkipsOwnOutput(t *testing.T) {
	tmp := t.TempDir()
	writeSource(t, tmp, "Tonic/App.swift")

	cfg := config.Default("Tonic")
	if _, err := Run(tmp, cfg); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	// The project bundle written by the first run must not change the second.
	result, err := Run(tmp, cfg)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if result.SourceCount != 1 {
		t.Errorf("SourceCount = %d after regeneration, want 1", result.SourceCount)
	}
}

func TestRun_EmptyTree(t *testing.T) {
	tmp := t.TempDir()

	result, err := Run(tmp, config.Default("Tonic"))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.SourceCount != 0 {
		t.Errorf("SourceCount = %d, want 0", result.SourceCount)
	}

	data, err := os.ReadFile(result.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "/* Begin PBXSourcesBuildPhase section */") {
		t.Error("empty-tree manifest missing sources phase section")
	}
	if strings.Contains(out, "in Sources") {
		t.Error("empty-tree manifest lists build-phase entries")
	}
}
