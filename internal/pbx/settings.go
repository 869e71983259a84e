package pbx

import "fmt"

// Build-setting tables for the four configuration variants. Order is fixed;
// the serializer emits settings exactly as listed here.

func projectDebugSettings(opts BuildOptions) []Setting {
	return []Setting{
		{Key: "ALWAYS_SEARCH_USER_PATHS", Value: "NO"},
		{Key: "ASSETCATALOG_COMPILER_GENERATE_SWIFT_ASSET_SYMBOL_EXTENSIONS", Value: "YES"},
		{Key: "CLANG_ANALYZER_NONNULL", Value: "YES"},
		{Key: "CLANG_CXX_LANGUAGE_STANDARD", Value: `"gnu++20"`},
		{Key: "CLANG_ENABLE_MODULES", Value: "YES"},
		{Key: "CLANG_ENABLE_OBJC_ARC", Value: "YES"},
		{Key: "CLANG_WARN_UNGUARDED_AVAILABILITY", Value: "YES_AGGRESSIVE"},
		{Key: "COPY_PHASE_STRIP", Value: "NO"},
		{Key: "DEBUG_INFORMATION_FORMAT", Value: "dwarf"},
		{Key: "ENABLE_STRICT_OBJC_MSGSEND", Value: "YES"},
		{Key: "ENABLE_TESTABILITY", Value: "YES"},
		{Key: "GCC_C_LANGUAGE_STANDARD", Value: "gnu17"},
		{Key: "GCC_NO_COMMON_BLOCKS", Value: "YES"},
		{Key: "GCC_WARN_64_TO_32_BIT_CONVERSION", Value: "YES"},
		{Key: "GCC_WARN_ABOUT_RETURN_TYPE", Value: "YES_ERROR"},
		{Key: "GCC_WARN_UNDECLARED_SELECTOR", Value: "YES"},
		{Key: "MACOSX_DEPLOYMENT_TARGET", Value: opts.DeploymentTarget},
		{Key: "MTL_ENABLE_DEBUG_INFO", Value: "INCLUDE_SOURCE"},
		{Key: "ONLY_ACTIVE_ARCH", Value: "YES"},
		{Key: "SDKROOT", Value: "macosx"},
		{Key: "SWIFT_ACTIVE_COMPILATION_CONDITIONS", Value: `"DEBUG $(inherited)"`},
		{Key: "SWIFT_OPTIMIZATION_LEVEL", Value: `"-Onone"`},
	}
}

func projectReleaseSettings(opts BuildOptions) []Setting {
	return []Setting{
		{Key: "ALWAYS_SEARCH_USER_PATHS", Value: "NO"},
		{Key: "ASSETCATALOG_COMPILER_GENERATE_SWIFT_ASSET_SYMBOL_EXTENSIONS", Value: "YES"},
		{Key: "CLANG_ANALYZER_NONNULL", Value: "YES"},
		{Key: "CLANG_CXX_LANGUAGE_STANDARD", Value: `"gnu++20"`},
		{Key: "CLANG_ENABLE_MODULES", Value: "YES"},
		{Key: "CLANG_ENABLE_OBJC_ARC", Value: "YES"},
		{Key: "CLANG_WARN_UNGUARDED_AVAILABILITY", Value: "YES_AGGRESSIVE"},
		{Key: "COPY_PHASE_STRIP", Value: "NO"},
		{Key: "DEBUG_INFORMATION_FORMAT", Value: `"dwarf-with-dsym"`},
		{Key: "ENABLE_NS_ASSERTIONS", Value: "NO"},
		{Key: "ENABLE_STRICT_OBJC_MSGSEND", Value: "YES"},
		{Key: "GCC_C_LANGUAGE_STANDARD", Value: "gnu17"},
		{Key: "GCC_NO_COMMON_BLOCKS", Value: "YES"},
		{Key: "GCC_WARN_64_TO_32_BIT_CONVERSION", Value: "YES"},
		{Key: "GCC_WARN_ABOUT_RETURN_TYPE", Value: "YES_ERROR"},
		{Key: "GCC_WARN_UNDECLARED_SELECTOR", Value: "YES"},
		{Key: "MACOSX_DEPLOYMENT_TARGET", Value: opts.DeploymentTarget},
		{Key: "MTL_ENABLE_DEBUG_INFO", Value: "NO"},
		{Key: "SDKROOT", Value: "macosx"},
		{Key: "SWIFT_COMPILATION_MODE", Value: "wholemodule"},
	}
}

// targetSettings is shared by the target's Debug and Release variants; the
// two differ only in identifier.
func targetSettings(opts BuildOptions) []Setting {
	return []Setting{
		{Key: "ASSETCATALOG_COMPILER_APPICON_NAME", Value: "AppIcon"},
		{Key: "ASSETCATALOG_COMPILER_GLOBAL_ACCENT_COLOR_NAME", Value: "AccentColor"},
		{Key: "CODE_SIGN_ENTITLEMENTS", Value: fmt.Sprintf("%s/%s.entitlements", opts.SourceDir, opts.Name)},
		{Key: "CODE_SIGN_STYLE", Value: "Automatic"},
		{Key: "COMBINE_HIDPI_IMAGES", Value: "YES"},
		{Key: "CURRENT_PROJECT_VERSION", Value: "1"},
		{Key: "DEVELOPMENT_TEAM", Value: `""`},
		{Key: "ENABLE_HARDENED_RUNTIME", Value: "NO"},
		{Key: "ENABLE_PREVIEWS", Value: "YES"},
		{Key: "GENERATE_INFOPLIST_FILE", Value: "YES"},
		{Key: "INFOPLIST_KEY_CFBundleDisplayName", Value: fmt.Sprintf("%q", opts.DisplayName)},
		{Key: "INFOPLIST_KEY_LSApplicationCategoryType", Value: `"public.app-category.utilities"`},
		{Key: "INFOPLIST_KEY_NSHumanReadableCopyright", Value: `""`},
		{Key: "LD_RUNPATH_SEARCH_PATHS", List: []string{`"$(inherited)"`, `"@executable_path/../Frameworks"`}},
		{Key: "MACOSX_DEPLOYMENT_TARGET", Value: opts.DeploymentTarget},
		{Key: "MARKETING_VERSION", Value: opts.MarketingVersion},
		{Key: "PRODUCT_BUNDLE_IDENTIFIER", Value: opts.BundleIdentifier},
		{Key: "PRODUCT_NAME", Value: `"$(TARGET_NAME)"`},
		{Key: "SDKROOT", Value: "macosx"},
		{Key: "SWIFT_EMIT_LOC_STRINGS", Value: "YES"},
		{Key: "SWIFT_VERSION", Value: "5.0"},
	}
}
