package pbx

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Group
	}{
		{"models", "Tonic/Models/User.swift", Models},
		{"views", "Tonic/Views/Main.swift", Views},
		{"utilities", "Tonic/Utilities/Debounce.swift", Utilities},
		{"services", "Tonic/Services/Sync.swift", Services},
		{"design", "Tonic/Design/Palette.swift", Design},
		{"top level", "Tonic/App.swift", TopLevel},
		{"unknown subfolder", "Tonic/Extras/Helper.swift", Ungrouped},
		{"outside source dir", "Other/Main.swift", Ungrouped},
		{"single component", "Standalone.swift", Ungrouped},
		{"nested match wins by enumeration order", "Tonic/Models/Views/Cell.swift", Models},
		{"enumeration order beats path order", "Tonic/Views/Models/Row.swift", Models},
		{"file named like a group is not grouped", "Tonic/Models.swift", TopLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.path, "Tonic"); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got.Name(), tt.want.Name())
			}
		})
	}
}

func TestClassify_ExactlyOneGroup(t *testing.T) {
	// A grouped file must never also count as top level.
	path := "Tonic/Models/User.swift"
	if got := Classify(path, "Tonic"); got != Models {
		t.Fatalf("Classify(%q) = %v, want Models", path, got.Name())
	}
}
