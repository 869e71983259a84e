package platform

import (
	"runtime"
	"testing"
)

func TestDetect_MatchesRuntime(t *testing.T) {
	got := Detect()
	switch runtime.GOOS {
	case "darwin":
		if got != MacOS {
			t.Errorf("Detect() = %v, want %v", got, MacOS)
		}
	case "linux":
		if got != Linux {
			t.Errorf("Detect() = %v, want %v", got, Linux)
		}
	default:
		if got != Other {
			t.Errorf("Detect() = %v, want %v", got, Other)
		}
	}
}

func TestIsMacOS(t *testing.T) {
	if got, want := IsMacOS(), runtime.GOOS == "darwin"; got != want {
		t.Errorf("IsMacOS() = %v, want %v", got, want)
	}
}
