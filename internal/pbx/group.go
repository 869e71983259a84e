package pbx

import "strings"

// Group is one of the fixed content buckets the manifest organizes sources
// under. The set is a closed enumeration, not a general tree: nested
// folders beyond these names are collected and compiled but not grouped.
type Group int

const (
	// TopLevel marks files sitting directly inside the source directory.
	TopLevel Group = iota
	Models
	Views
	Utilities
	Services
	Design
	// Ungrouped marks files that are built but shown under no group.
	Ungrouped
)

// groupOrder fixes the classification and serialization order of the named
// groups. A path whose components match more than one group segment is
// assigned to the first match in this order.
var groupOrder = []Group{Models, Views, Utilities, Services, Design}

// Name returns the folder segment and display name of the group.
func (g Group) Name() string {
	switch g {
	case Models:
		return "Models"
	case Views:
		return "Views"
	case Utilities:
		return "Utilities"
	case Services:
		return "Services"
	case Design:
		return "Design"
	case TopLevel:
		return "TopLevel"
	}
	return "Ungrouped"
}

// Salt returns the identifier salt of the group's manifest object.
func (g Group) Salt() string {
	switch g {
	case Models:
		return "models"
	case Views:
		return "views"
	case Utilities:
		return "utils"
	case Services:
		return "services"
	case Design:
		return "design"
	}
	return ""
}

// Classify assigns a collected path to a group. A path belongs to the first
// group (in groupOrder) whose name appears among its directory components.
// A path matching no group is TopLevel when it sits directly inside
// sourceDir, and Ungrouped otherwise.
func Classify(relPath, sourceDir string) Group {
	parts := strings.Split(relPath, "/")
	dirs := parts[:len(parts)-1]
	for _, g := range groupOrder {
		for _, d := range dirs {
			if d == g.Name() {
				return g
			}
		}
	}
	if len(parts) == 2 && parts[0] == sourceDir {
		return TopLevel
	}
	return Ungrouped
}
