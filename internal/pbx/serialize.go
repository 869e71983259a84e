package pbx

import (
	"fmt"
	"strings"
)

// Fixed document header values.
const (
	archiveVersion = 1
	objectVersion  = 56
)

// Serialize renders the manifest as a single text blob: fixed header, the
// object sections in fixed order, and a closing rootObject reference to the
// project identifier. Output is byte-for-byte deterministic for a given
// Project.
func (p *Project) Serialize() string {
	var b strings.Builder

	b.WriteString("// !$*UTF8*$!\n")
	b.WriteString("{\n")
	fmt.Fprintf(&b, "\tarchiveVersion = %d;\n", archiveVersion)
	b.WriteString("\tclasses = {\n")
	b.WriteString("\t};\n")
	fmt.Fprintf(&b, "\tobjectVersion = %d;\n", objectVersion)
	b.WriteString("\tobjects = {\n")

	p.writeBuildFiles(&b)
	p.writeFileReferences(&b)
	p.writeFrameworksPhase(&b)
	p.writeGroups(&b)
	p.writeNativeTarget(&b)
	p.writeProject(&b)
	p.writeResourcesPhase(&b)
	p.writeSourcesPhase(&b)
	p.writeBuildConfigurations(&b)
	p.writeConfigurationLists(&b)

	b.WriteString("\t};\n")
	fmt.Fprintf(&b, "\trootObject = %s /* Project object */;\n", p.ID)
	b.WriteString("}")

	return b.String()
}

func (p *Project) writeBuildFiles(b *strings.Builder) {
	b.WriteString("/* Begin PBXBuildFile section */\n")
	for _, f := range p.Files {
		fmt.Fprintf(b, "\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n",
			f.BuildID, f.Name, f.RefID, f.Name)
	}
	b.WriteString("/* End PBXBuildFile section */\n")
}

func (p *Project) writeFileReferences(b *strings.Builder) {
	b.WriteString("/* Begin PBXFileReference section */\n")
	fmt.Fprintf(b, "\t\t%s /* %s.app */ = {isa = PBXFileReference; explicitFileType = wrapper.application; includeInIndex = 0; path = %s.app; sourceTree = BUILT_PRODUCTS_DIR; };\n",
		p.AppRefID, p.Name, p.Name)
	// Files in subgroups carry only their base name; the owning group's path
	// attribute resolves the full location.
	for _, f := range p.Files {
		fmt.Fprintf(b, "\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; path = \"%s\"; sourceTree = \"<group>\"; };\n",
			f.RefID, f.Name, p.FileType, f.Name)
	}
	b.WriteString("/* End PBXFileReference section */\n")
}

func (p *Project) writeFrameworksPhase(b *strings.Builder) {
	b.WriteString("/* Begin PBXFrameworksBuildPhase section */\n")
	writeEmptyPhase(b, p.FrameworksPhaseID, "Frameworks", "PBXFrameworksBuildPhase")
	b.WriteString("/* End PBXFrameworksBuildPhase section */\n")
}

func (p *Project) writeResourcesPhase(b *strings.Builder) {
	b.WriteString("/* Begin PBXResourcesBuildPhase section */\n")
	writeEmptyPhase(b, p.ResourcesPhaseID, "Resources", "PBXResourcesBuildPhase")
	b.WriteString("/* End PBXResourcesBuildPhase section */\n")
}

// writeEmptyPhase emits a build phase carrying no files.
func writeEmptyPhase(b *strings.Builder, id, name, isa string) {
	fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", id, name)
	fmt.Fprintf(b, "\t\t\tisa = %s;\n", isa)
	b.WriteString("\t\t\tbuildActionMask = 2147483647;\n")
	b.WriteString("\t\t\tfiles = (\n")
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\trunOnlyForDeploymentPostprocessing = 0;\n")
	b.WriteString("\t\t};\n")
}

func (p *Project) writeSourcesPhase(b *strings.Builder) {
	b.WriteString("/* Begin PBXSourcesBuildPhase section */\n")
	fmt.Fprintf(b, "\t\t%s /* Sources */ = {\n", p.SourcesPhaseID)
	b.WriteString("\t\t\tisa = PBXSourcesBuildPhase;\n")
	b.WriteString("\t\t\tbuildActionMask = 2147483647;\n")
	b.WriteString("\t\t\tfiles = (\n")
	for _, f := range p.Files {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s in Sources */,\n", f.BuildID, f.Name)
	}
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\trunOnlyForDeploymentPostprocessing = 0;\n")
	b.WriteString("\t\t};\n")
	b.WriteString("/* End PBXSourcesBuildPhase section */\n")
}

func (p *Project) writeGroups(b *strings.Builder) {
	b.WriteString("/* Begin PBXGroup section */\n")

	// Root group: the named source group plus Products.
	fmt.Fprintf(b, "\t\t%s = {\n", p.MainGroupID)
	b.WriteString("\t\t\tisa = PBXGroup;\n")
	b.WriteString("\t\t\tchildren = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", p.ContainerGroupID, p.Name)
	fmt.Fprintf(b, "\t\t\t\t%s /* Products */,\n", p.ProductsGroupID)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	b.WriteString("\t\t};\n")

	// Products group.
	fmt.Fprintf(b, "\t\t%s /* Products */ = {\n", p.ProductsGroupID)
	b.WriteString("\t\t\tisa = PBXGroup;\n")
	b.WriteString("\t\t\tchildren = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* %s.app */,\n", p.AppRefID, p.Name)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tname = Products;\n")
	b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	b.WriteString("\t\t};\n")

	// Container group: the five named groups followed by top-level files.
	fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", p.ContainerGroupID, p.Name)
	b.WriteString("\t\t\tisa = PBXGroup;\n")
	b.WriteString("\t\t\tchildren = (\n")
	for _, g := range groupOrder {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", p.GroupIDs[g], g.Name())
	}
	for _, f := range p.filesIn(TopLevel) {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", f.RefID, f.Name)
	}
	b.WriteString("\t\t\t);\n")
	fmt.Fprintf(b, "\t\t\tpath = %s;\n", p.SourceDir)
	b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	b.WriteString("\t\t};\n")

	// The five named groups.
	for _, g := range groupOrder {
		fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", p.GroupIDs[g], g.Name())
		b.WriteString("\t\t\tisa = PBXGroup;\n")
		b.WriteString("\t\t\tchildren = (\n")
		for _, f := range p.filesIn(g) {
			fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", f.RefID, f.Name)
		}
		b.WriteString("\t\t\t);\n")
		fmt.Fprintf(b, "\t\t\tpath = %s;\n", g.Name())
		b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
		b.WriteString("\t\t};\n")
	}

	b.WriteString("/* End PBXGroup section */\n")
}

func (p *Project) writeNativeTarget(b *strings.Builder) {
	b.WriteString("/* Begin PBXNativeTarget section */\n")
	fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", p.TargetID, p.Name)
	b.WriteString("\t\t\tisa = PBXNativeTarget;\n")
	fmt.Fprintf(b, "\t\t\tbuildConfigurationList = %s /* Build configuration list for PBXNativeTarget \"%s\" */;\n",
		p.TargetConfigListID, p.Name)
	b.WriteString("\t\t\tbuildPhases = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* Sources */,\n", p.SourcesPhaseID)
	fmt.Fprintf(b, "\t\t\t\t%s /* Frameworks */,\n", p.FrameworksPhaseID)
	fmt.Fprintf(b, "\t\t\t\t%s /* Resources */,\n", p.ResourcesPhaseID)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tbuildRules = (\n")
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tdependencies = (\n")
	b.WriteString("\t\t\t);\n")
	fmt.Fprintf(b, "\t\t\tname = %s;\n", p.Name)
	fmt.Fprintf(b, "\t\t\tproductName = %s;\n", p.Name)
	fmt.Fprintf(b, "\t\t\tproductReference = %s /* %s.app */;\n", p.AppRefID, p.Name)
	b.WriteString("\t\t\tproductType = \"com.apple.product-type.application\";\n")
	b.WriteString("\t\t};\n")
	b.WriteString("/* End PBXNativeTarget section */\n")
}

func (p *Project) writeProject(b *strings.Builder) {
	b.WriteString("/* Begin PBXProject section */\n")
	fmt.Fprintf(b, "\t\t%s /* Project object */ = {\n", p.ID)
	b.WriteString("\t\t\tisa = PBXProject;\n")
	b.WriteString("\t\t\tattributes = {\n")
	b.WriteString("\t\t\t\tBuildIndependentTargetsInParallel = 1;\n")
	b.WriteString("\t\t\t\tLastSwiftUpdateCheck = 1500;\n")
	b.WriteString("\t\t\t\tLastUpgradeCheck = 1500;\n")
	b.WriteString("\t\t\t\tTargetAttributes = {\n")
	fmt.Fprintf(b, "\t\t\t\t\t%s = {\n", p.TargetID)
	b.WriteString("\t\t\t\t\t\tCreatedOnToolsVersion = 15.0;\n")
	b.WriteString("\t\t\t\t\t\tSystemCapabilities = {\n")
	b.WriteString("\t\t\t\t\t\t\tcom.apple.Sandbox = {\n")
	b.WriteString("\t\t\t\t\t\t\t\tenabled = 0;\n")
	b.WriteString("\t\t\t\t\t\t\t};\n")
	b.WriteString("\t\t\t\t\t\t};\n")
	b.WriteString("\t\t\t\t\t};\n")
	b.WriteString("\t\t\t\t};\n")
	b.WriteString("\t\t\t};\n")
	fmt.Fprintf(b, "\t\t\tbuildConfigurationList = %s /* Build configuration list for PBXProject \"%s\" */;\n",
		p.ProjectConfigListID, p.Name)
	b.WriteString("\t\t\tcompatibilityVersion = \"Xcode 14.0\";\n")
	b.WriteString("\t\t\tdevelopmentRegion = en;\n")
	b.WriteString("\t\t\thasScannedForEncodings = 0;\n")
	b.WriteString("\t\t\tknownRegions = (\n")
	b.WriteString("\t\t\t\ten,\n")
	b.WriteString("\t\t\t\tBase,\n")
	b.WriteString("\t\t\t);\n")
	fmt.Fprintf(b, "\t\t\tmainGroup = %s;\n", p.MainGroupID)
	fmt.Fprintf(b, "\t\t\tproductRefGroup = %s;\n", p.ProductsGroupID)
	b.WriteString("\t\t\tprojectDirPath = \"\";\n")
	b.WriteString("\t\t\tprojectRoot = \"\";\n")
	b.WriteString("\t\t\ttargets = (\n")
	fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", p.TargetID, p.Name)
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t};\n")
	b.WriteString("/* End PBXProject section */\n")
}

func (p *Project) writeBuildConfigurations(b *strings.Builder) {
	b.WriteString("/* Begin XCBuildConfiguration section */\n")
	for _, c := range []Configuration{
		p.ProjectConfigs[0], p.ProjectConfigs[1],
		p.TargetConfigs[0], p.TargetConfigs[1],
	} {
		fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", c.ID, c.Name)
		b.WriteString("\t\t\tisa = XCBuildConfiguration;\n")
		b.WriteString("\t\t\tbuildSettings = {\n")
		for _, s := range c.Settings {
			if s.List != nil {
				fmt.Fprintf(b, "\t\t\t\t%s = (\n", s.Key)
				for _, v := range s.List {
					fmt.Fprintf(b, "\t\t\t\t\t%s,\n", v)
				}
				b.WriteString("\t\t\t\t);\n")
				continue
			}
			fmt.Fprintf(b, "\t\t\t\t%s = %s;\n", s.Key, s.Value)
		}
		b.WriteString("\t\t\t};\n")
		fmt.Fprintf(b, "\t\t\tname = %s;\n", c.Name)
		b.WriteString("\t\t};\n")
	}
	b.WriteString("/* End XCBuildConfiguration section */\n")
}

func (p *Project) writeConfigurationLists(b *strings.Builder) {
	b.WriteString("/* Begin XCConfigurationList section */\n")
	writeConfigList(b, p.ProjectConfigListID,
		fmt.Sprintf("Build configuration list for PBXProject \"%s\"", p.Name),
		p.ProjectConfigs)
	writeConfigList(b, p.TargetConfigListID,
		fmt.Sprintf("Build configuration list for PBXNativeTarget \"%s\"", p.Name),
		p.TargetConfigs)
	b.WriteString("/* End XCConfigurationList section */\n")
}

func writeConfigList(b *strings.Builder, id, comment string, configs [2]Configuration) {
	fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", id, comment)
	b.WriteString("\t\t\tisa = XCConfigurationList;\n")
	b.WriteString("\t\t\tbuildConfigurations = (\n")
	for _, c := range configs {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", c.ID, c.Name)
	}
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tdefaultConfigurationIsVisible = 0;\n")
	b.WriteString("\t\t\tdefaultConfigurationName = Release;\n")
	b.WriteString("\t\t};\n")
}
