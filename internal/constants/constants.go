package constants

import "os"

// Source collection constants
const (
	// SourceExtension is the default file extension of recognized source files.
	SourceExtension = ".swift"

	// PackageManifestFile is the Swift package manifest. It describes the
	// package rather than the application, so it is never collected.
	PackageManifestFile = "Package.swift"
)

// ExcludedDirs are directory names never traversed for sources. Directories
// ending in ProjectDirSuffix are excluded as well, whatever their name.
var ExcludedDirs = []string{"Sources", ".build", ".swiftpm"}

// Output layout constants
const (
	// ProjectDirSuffix is appended to the project name to form the project
	// bundle directory.
	ProjectDirSuffix = ".xcodeproj"

	// ProjectFileName is the manifest file written inside the project bundle.
	ProjectFileName = "project.pbxproj"

	// ConfigFileName is the optional per-project configuration file.
	ConfigFileName = ".pbxgen.json"
)

// File permissions
const (
	// DirPermissions is the default permission mode for created directories.
	DirPermissions os.FileMode = 0755

	// FilePermissions is the default permission mode for written files.
	FilePermissions os.FileMode = 0644
)
