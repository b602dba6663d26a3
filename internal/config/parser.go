package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	aaberrors "github.com/alexisbeaulieu97/aabuilder/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a project configuration file. YAML and JSON documents are both
// accepted. Relative paths inside the file are resolved against the file's
// directory. The result is not validated; see Validate.
func Load(path string) (ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, aaberrors.NewParseError(path, 0, err)
	}

	cfg, err := Decode(data)
	if err != nil {
		return ProjectConfig{}, aaberrors.NewParseError(path, extractLine(err), err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return ProjectConfig{}, aaberrors.NewParseError(path, 0, err)
	}

	return resolvePaths(cfg, filepath.Dir(abs)), nil
}

// Decode parses a configuration document, rejecting unknown keys.
func Decode(data []byte) (ProjectConfig, error) {
	var cfg ProjectConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return ProjectConfig{}, fmt.Errorf("configuration document is empty")
		}
		return ProjectConfig{}, err
	}

	return cfg, nil
}

func resolvePaths(cfg ProjectConfig, base string) ProjectConfig {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	cfg.SourcePath = resolve(cfg.SourcePath)
	cfg.IconPath = resolve(cfg.IconPath)
	cfg.OutputPath = resolve(cfg.OutputPath)
	cfg.TemplateDir = resolve(cfg.TemplateDir)
	return cfg
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
