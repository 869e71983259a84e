package uid

import (
	"regexp"
	"strings"
	"testing"
)

var hexPattern = regexp.MustCompile(`^[0-9A-F]{24}$`)

func TestHash_Deterministic(t *testing.T) {
	a := Hash("project")
	b := Hash("project")
	if a != b {
		t.Errorf("Hash(\"project\") = %v then %v, want identical results", a, b)
	}
}

func TestHash_Format(t *testing.T) {
	for _, salt := range []string{"project", "mainGroup", "file_Tonic/App.swift", ""} {
		id := Hash(salt)
		if !hexPattern.MatchString(id) {
			t.Errorf("Hash(%q) = %q, want %d uppercase hex digits", salt, id, Length)
		}
	}
}

func TestGenerator_RoleSaltsDistinct(t *testing.T) {
	salts := []string{
		"project", "mainGroup", "target", "products",
		"sources", "resources", "frameworks", "app",
		"configlist", "targetconfiglist",
		"models", "views", "utils", "services", "design",
		"debug_proj", "release_proj", "debug_target", "release_target",
	}

	g := NewGenerator()
	seen := make(map[string]string)
	for _, s := range salts {
		id := g.ID(s)
		if prev, ok := seen[id]; ok {
			t.Errorf("salts %q and %q produced the same identifier %s", prev, s, id)
		}
		seen[id] = s
	}
}

func TestGenerator_SameSaltStable(t *testing.T) {
	g := NewGenerator()
	if g.ID("file_a") != g.ID("file_a") {
		t.Error("ID() returned different identifiers for the same salt")
	}
}

func TestGenerator_PerturbsOnCollision(t *testing.T) {
	g := NewGenerator()
	// Force every unperturbed salt to the same digest so the collision
	// branch is exercised; perturbed salts hash normally.
	g.hashFn = func(salt string) string {
		if strings.Contains(salt, "#") {
			return Hash(salt)
		}
		return "AAAAAAAAAAAAAAAAAAAAAAAA"
	}

	first := g.ID("alpha")
	second := g.ID("beta")

	if first != "AAAAAAAAAAAAAAAAAAAAAAAA" {
		t.Errorf("first identifier = %v, want the forced digest", first)
	}
	if second == first {
		t.Errorf("collision not resolved: both identifiers are %s", first)
	}
	if got := g.ID("beta"); got != second {
		t.Errorf("perturbed identifier not stable: %v then %v", second, got)
	}
}
