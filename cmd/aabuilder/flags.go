package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/aabuilder/internal/config"
	"github.com/alexisbeaulieu97/aabuilder/internal/logger"
)

// bindProjectFlags registers the flags that describe a project.
func bindProjectFlags(cmd *cobra.Command, opts *generateOptions) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a YAML or JSON project file")
	flags.StringVar(&opts.Name, "name", "", "App display name")
	flags.StringVar(&opts.Package, "package", "", "Application package identifier, e.g. com.example.app")
	flags.StringVar(&opts.URL, "url", "", "Load this URL in the WebView")
	flags.StringVar(&opts.SourceDir, "source-dir", "", "Bundle this directory (must contain index.html)")
	flags.StringVar(&opts.Color, "color", "", "Primary color as #RRGGBB")
	flags.StringArrayVarP(&opts.Permissions, "permission", "p", nil, "Android permission to request (repeatable)")
	flags.StringVar(&opts.Icon, "icon", "", "Launcher icon image")
	flags.StringVarP(&opts.Output, "output", "o", "", "Directory receiving the generated project")
	flags.StringVar(&opts.TemplateDir, "template-dir", "", "Use this directory instead of the built-in template")
	flags.BoolVar(&opts.Git, "git", false, "Initialise a git repository with an initial commit")
	flags.StringVar(&opts.VersionName, "version-name", "", "Version name, e.g. 1.2.0")
	flags.IntVar(&opts.VersionCode, "version-code", 0, "Integer version code")
	cmd.MarkFlagsMutuallyExclusive("url", "source-dir")
}

func validateConfigPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}
	return nil
}

// buildConfig loads the optional config file and layers explicitly set flags on top.
func buildConfig(opts generateOptions, changed func(string) bool) (config.ProjectConfig, error) {
	var cfg config.ProjectConfig

	if strings.TrimSpace(opts.ConfigPath) != "" {
		if err := validateConfigPath(opts.ConfigPath); err != nil {
			return cfg, err
		}
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if changed("name") {
		cfg.AppName = opts.Name
	}
	if changed("package") {
		cfg.PackageName = opts.Package
	}
	if changed("url") {
		cfg.SourceType = config.SourceURL
		cfg.SourceURL = opts.URL
		cfg.SourcePath = ""
	}
	if changed("source-dir") {
		cfg.SourceType = config.SourceLocal
		cfg.SourcePath = opts.SourceDir
		cfg.SourceURL = ""
	}
	if changed("color") {
		cfg.ColorScheme = opts.Color
	}
	if changed("permission") {
		cfg.Permissions = append([]string(nil), opts.Permissions...)
	}
	if changed("icon") {
		cfg.IconPath = opts.Icon
	}
	if changed("output") {
		cfg.OutputPath = opts.Output
	}
	if changed("template-dir") {
		cfg.TemplateDir = opts.TemplateDir
	}
	if changed("git") {
		cfg.InitGit = opts.Git
	}
	if changed("version-name") {
		cfg.VersionName = opts.VersionName
	}
	if changed("version-code") {
		cfg.VersionCode = opts.VersionCode
	}

	return cfg, nil
}

func newCommandLogger(verbose bool, w io.Writer) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w})
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
