// Package pbx assembles and serializes the project manifest: the build
// descriptor document listing every source file, its grouping and the build
// configurations of a single application target.
//
// A Project is constructed once per run from the collected file list, never
// mutated afterwards, and serialized exactly once.
package pbx

// FileEntry pairs the two manifest records every source file gets: the file
// reference declaring its existence and the build-file entry compiling it.
type FileEntry struct {
	Path    string // slash-separated path relative to the project root
	Name    string // base name, as shown in the manifest
	Group   Group
	RefID   string // file reference identifier
	BuildID string // build-file entry identifier
}

// Setting is one ordered build-setting pair. Either Value or List is set;
// List renders as a parenthesized multi-line block.
type Setting struct {
	Key   string
	Value string
	List  []string
}

// Configuration is one build-configuration variant at one scope.
type Configuration struct {
	ID       string
	Name     string // "Debug" or "Release"
	Settings []Setting
}

// Project is the fully-assembled manifest.
type Project struct {
	Name        string
	DisplayName string
	SourceDir   string
	FileType    string // lastKnownFileType applied to every source file

	ID                  string // project object
	MainGroupID         string
	ContainerGroupID    string // the named source group under the root
	ProductsGroupID     string
	TargetID            string
	AppRefID            string
	SourcesPhaseID      string
	FrameworksPhaseID   string
	ResourcesPhaseID    string
	ProjectConfigListID string
	TargetConfigListID  string

	GroupIDs map[Group]string

	Files []FileEntry // sorted by Path

	ProjectConfigs [2]Configuration // Debug, Release
	TargetConfigs  [2]Configuration // Debug, Release
}

// filesIn returns the entries classified under g, preserving sorted order.
func (p *Project) filesIn(g Group) []FileEntry {
	var out []FileEntry
	for _, f := range p.Files {
		if f.Group == g {
			out = append(out, f)
		}
	}
	return out
}
