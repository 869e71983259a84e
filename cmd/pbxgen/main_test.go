package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeanhaley32/pbxgen/internal/terminal"
)

func TestConfirmOverwrite(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "project.pbxproj")
	if err := os.WriteFile(existing, []byte("// !$*UTF8*$!\n"), 0644); err != nil {
		t.Fatalf("Failed to write project file: %v", err)
	}
	missing := filepath.Join(t.TempDir(), "project.pbxproj")

	tests := []struct {
		name        string
		outPath     string
		force       bool
		needsNonTTY bool
	}{
		{"force skips the prompt", existing, true, false},
		{"first generation needs no prompt", missing, false, false},
		{"non-interactive run proceeds", existing, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.needsNonTTY && terminal.IsTerminal() {
				t.Skip("stdin is a terminal")
			}
			ok, err := confirmOverwrite(tt.outPath, tt.force)
			if err != nil {
				t.Fatalf("confirmOverwrite() error = %v", err)
			}
			if !ok {
				t.Error("confirmOverwrite() = false, want true")
			}
		})
	}
}
