package pbx

import (
	"path"
	"strings"

	"github.com/jeanhaley32/pbxgen/internal/uid"
)

// BuildOptions are the naming inputs the manifest embeds.
type BuildOptions struct {
	Name             string
	SourceDir        string
	DisplayName      string
	Extension        string
	BundleIdentifier string
	DeploymentTarget string
	MarketingVersion string
}

// Fixed role salts. Every structural element of the manifest derives its
// identifier from one of these, or from a per-file variant.
const (
	saltProject           = "project"
	saltMainGroup         = "mainGroup"
	saltTarget            = "target"
	saltProducts          = "products"
	saltSourcesPhase      = "sources"
	saltResourcesPhase    = "resources"
	saltFrameworksPhase   = "frameworks"
	saltAppRef            = "app"
	saltProjectConfigList = "configlist"
	saltTargetConfigList  = "targetconfiglist"
)

// Build assembles the manifest object graph for the given source paths,
// which must already be sorted. Identifier derivation is the only stateful
// step; everything else is a pure mapping of the inputs.
func Build(paths []string, opts BuildOptions) *Project {
	g := uid.NewGenerator()

	p := &Project{
		Name:        opts.Name,
		DisplayName: opts.DisplayName,
		SourceDir:   opts.SourceDir,
		FileType:    sourceFileType(opts.Extension),

		ID:                  g.ID(saltProject),
		MainGroupID:         g.ID(saltMainGroup),
		TargetID:            g.ID(saltTarget),
		ProductsGroupID:     g.ID(saltProducts),
		SourcesPhaseID:      g.ID(saltSourcesPhase),
		ResourcesPhaseID:    g.ID(saltResourcesPhase),
		FrameworksPhaseID:   g.ID(saltFrameworksPhase),
		AppRefID:            g.ID(saltAppRef),
		ProjectConfigListID: g.ID(saltProjectConfigList),
		TargetConfigListID:  g.ID(saltTargetConfigList),
		ContainerGroupID:    g.ID(strings.ToLower(opts.Name) + "group"),

		GroupIDs: make(map[Group]string, len(groupOrder)),
	}

	for _, grp := range groupOrder {
		p.GroupIDs[grp] = g.ID(grp.Salt())
	}

	for _, rel := range paths {
		p.Files = append(p.Files, FileEntry{
			Path:    rel,
			Name:    path.Base(rel),
			Group:   Classify(rel, opts.SourceDir),
			RefID:   g.ID("file_" + rel),
			BuildID: g.ID("build_" + rel),
		})
	}

	p.ProjectConfigs = [2]Configuration{
		{ID: g.ID("debug_proj"), Name: "Debug", Settings: projectDebugSettings(opts)},
		{ID: g.ID("release_proj"), Name: "Release", Settings: projectReleaseSettings(opts)},
	}
	p.TargetConfigs = [2]Configuration{
		{ID: g.ID("debug_target"), Name: "Debug", Settings: targetSettings(opts)},
		{ID: g.ID("release_target"), Name: "Release", Settings: targetSettings(opts)},
	}

	return p
}

// sourceFileType maps a source extension to the manifest's file type tag.
func sourceFileType(ext string) string {
	switch ext {
	case ".swift":
		return "sourcecode.swift"
	case ".m":
		return "sourcecode.c.objc"
	case ".metal":
		return "sourcecode.metal"
	default:
		return "text"
	}
}
