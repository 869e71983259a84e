package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jeanhaley32/pbxgen/internal/config"
	"github.com/jeanhaley32/pbxgen/internal/constants"
	"github.com/jeanhaley32/pbxgen/internal/generator"
	"github.com/jeanhaley32/pbxgen/internal/platform"
	"github.com/jeanhaley32/pbxgen/internal/state"
	"github.com/jeanhaley32/pbxgen/internal/terminal"
	"github.com/jeanhaley32/pbxgen/internal/workspace"
)

var version = "0.1.0"

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "pbxgen",
		Short: "Regenerate the Xcode project file from the source tree",
		Long:  "pbxgen walks the project tree, collects its source files and deterministically regenerates project.pbxproj, so the project file never has to be maintained by hand.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newStatusCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configureLogging keeps normal runs quiet; warnings (identifier collisions)
// always surface, debug detail only with --verbose.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Collect sources and rewrite the project file",
		RunE:  runGenerate,
	}

	cmd.Flags().String("root", "", "Project root (defaults to the git workspace root)")
	cmd.Flags().String("name", "", "Project name (defaults to the root directory name)")
	cmd.Flags().String("config", "", "Path to a pbxgen config file")
	cmd.Flags().Bool("force", false, "Overwrite an existing project file without asking")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rootFlag, err := cmd.Flags().GetString("root")
	if err != nil {
		return fmt.Errorf("invalid root flag: %w", err)
	}
	nameFlag, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	configFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("invalid config flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("invalid force flag: %w", err)
	}

	root, cfg, err := resolveConfig(rootFlag, nameFlag, configFlag)
	if err != nil {
		return err
	}

	if !platform.IsMacOS() {
		fmt.Fprintln(os.Stderr, "Warning: generating outside macOS; the project can only be opened on a Mac.")
	}

	outPath := filepath.Join(root, cfg.OutputPath())
	ok, err := confirmOverwrite(outPath, force)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Aborted.")
		return nil
	}

	result, err := generator.Run(root, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s with %d source files\n", result.OutputPath, result.SourceCount)
	return nil
}

// confirmOverwrite decides whether an existing project file at outPath may be
// replaced. --force and non-interactive runs proceed without a prompt, as does
// a first generation where nothing exists yet.
func confirmOverwrite(outPath string, force bool) (bool, error) {
	if force || !terminal.IsTerminal() {
		return true, nil
	}
	if _, err := os.Stat(outPath); err != nil {
		return true, nil
	}
	return terminal.Confirm(fmt.Sprintf("Overwrite %s?", outPath), false)
}

// resolveConfig determines the project root and assembles the effective
// configuration: built-in defaults, then the config file, then explicit
// flags.
func resolveConfig(rootFlag, nameFlag, configFlag string) (string, config.Config, error) {
	var root string
	var err error
	if rootFlag != "" {
		root, err = filepath.Abs(rootFlag)
		if err != nil {
			return "", config.Config{}, fmt.Errorf("invalid root path: %w", err)
		}
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return "", config.Config{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		root, err = workspace.Root(cwd)
		if err != nil {
			return "", config.Config{}, fmt.Errorf("failed to determine workspace root: %w", err)
		}
	}

	name := nameFlag
	if name == "" {
		name, err = workspace.ProjectName(root)
		if err != nil {
			return "", config.Config{}, err
		}
	}

	cfg := config.Default(name)
	cfg.BundleIdentifier = workspace.BundleIdentifier(root, name)

	// A config path named on the command line must exist; the discovered
	// root-level file is optional.
	cfgPath := configFlag
	if cfgPath == "" {
		cfgPath = filepath.Join(root, constants.ConfigFileName)
	}
	cfg, err = config.Load(cfgPath, cfg, configFlag != "")
	if err != nil {
		return "", config.Config{}, err
	}

	// An explicit --name wins over the config file.
	if nameFlag != "" {
		cfg.ProjectName = nameFlag
	}

	return root, cfg, nil
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show project state without writing anything",
		RunE:  runStatus,
	}

	cmd.Flags().String("root", "", "Project root (defaults to the git workspace root)")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	rootFlag, err := cmd.Flags().GetString("root")
	if err != nil {
		return fmt.Errorf("invalid root flag: %w", err)
	}

	root, cfg, err := resolveConfig(rootFlag, "", "")
	if err != nil {
		return err
	}

	detector := state.NewDetector(root, cfg)
	st := detector.Detect()

	fmt.Println("pbxgen project status")
	fmt.Println("=====================")
	fmt.Println()
	fmt.Printf("Root:         %s\n", st.Root)
	fmt.Printf("Project name: %s\n", cfg.ProjectName)

	if st.ProjectFileExists {
		fmt.Printf("Project file: %s (present)\n", st.ProjectFilePath)
	} else {
		fmt.Printf("Project file: %s (missing, run 'pbxgen generate')\n", st.ProjectFilePath)
	}

	if st.ConfigFileExists {
		fmt.Printf("Config file:  %s (present)\n", st.ConfigFilePath)
	} else {
		fmt.Printf("Config file:  %s (missing, defaults in effect)\n", st.ConfigFilePath)
	}

	fmt.Printf("Sources:      %d recognized %s files\n", st.SourceCount, cfg.Extension)

	if st.InGitRepo {
		fmt.Println("Git:          inside a work tree")
	} else {
		fmt.Println("Git:          not a repository")
	}

	return nil
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long:  "Writes a " + constants.ConfigFileName + " with the derived defaults so they can be edited and committed.",
		RunE:  runInit,
	}

	cmd.Flags().String("root", "", "Project root (defaults to the git workspace root)")
	cmd.Flags().String("name", "", "Project name (defaults to the root directory name)")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	rootFlag, err := cmd.Flags().GetString("root")
	if err != nil {
		return fmt.Errorf("invalid root flag: %w", err)
	}
	nameFlag, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}

	root, cfg, err := resolveConfig(rootFlag, nameFlag, "")
	if err != nil {
		return err
	}

	path := filepath.Join(root, constants.ConfigFileName)
	if err := config.WriteDefault(path, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Edit it and run 'pbxgen generate' to rebuild the project file.")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pbxgen version %s\n", version)
			fmt.Printf("Platform: %s\n", platform.Detect())
		},
	}
}
