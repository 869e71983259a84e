package collector

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
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

func TestCollect_SortedRelativePaths(t *testing.T) {
	tmp := t.TempDir()
	writeSource(t, tmp, "Tonic/Views/Main.swift")
	writeSource(t, tmp, "Tonic/App.swift")
	writeSource(t, tmp, "Tonic/Models/User.swift")

	got, err := Collect(tmp, DefaultOptions())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{
		"Tonic/App.swift",
		"Tonic/Models/User.swift",
		"Tonic/Views/Main.swift",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCollect_ExcludesBuildDirs(t *testing.T) {
	tmp := t.TempDir()
	writeSource(t, tmp, "Tonic/App.swift")
	writeSource(t, tmp, ".build/generated/Gen.swift")
	writeSource(t, tmp, ".swiftpm/cache/Cached.swift")
	writeSource(t, tmp, "Sources/Pkg/Lib.swift")
	writeSource(t, tmp, "Tonic.xcodeproj/Leftover.swift")

	got, err := Collect(tmp, DefaultOptions())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{"Tonic/App.swift"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCollect_SkipsPackageManifest(t *testing.T) {
	tmp := t.TempDir()
	writeSource(t, tmp, "Package.swift")
	writeSource(t, tmp, "Tonic/App.swift")

	got, err := Collect(tmp, DefaultOptions())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	for _, p := range got {
		if filepath.Base(p) == "Package.swift" {
			t.Errorf("Collect() included package manifest: %v", got)
		}
	}
}

func TestCollect_IgnoresOtherExtensions(t *testing.T) {
	tmp := t.TempDir()
	writeSource(t, tmp, "Tonic/App.swift")
	writeSource(t, tmp, "Tonic/README.md")
	writeSource(t, tmp, "Tonic/notes.txt")

	got, err := Collect(tmp, DefaultOptions())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{"Tonic/App.swift"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %v, want %v", got, want)
	}
}

func TestCollect_EmptyTree(t *testing.T) {
	tmp := t.TempDir()

	got, err := Collect(tmp, DefaultOptions())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Collect() = %v, want empty", got)
	}
}
