package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// projectManifest is the ruse.toml found by upward discovery from the
// target path. Everything in it is optional; a missing manifest means
// defaults.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Lint    lintConfig    `toml:"lint"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type lintConfig struct {
	// Disable lists check names to turn off, e.g. "use-braces".
	Disable []string `toml:"disable"`
	// MaxDiagnostics overrides the CLI default when positive.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Cache enables the on-disk diagnostics cache.
	Cache bool `toml:"cache"`
}

func findRuseToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ruse.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest locates and parses ruse.toml. The second return
// is false when no manifest exists, which is not an error.
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findRuseToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	meta, err := toml.DecodeFile(manifestPath, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	if meta.IsDefined("package", "name") && strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, true, fmt.Errorf("%s: [package].name must not be empty", manifestPath)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// manifestFor loads the manifest governing targetPath, searching from
// the file's directory or the directory itself.
func manifestFor(targetPath string) (*projectManifest, error) {
	start := targetPath
	if info, err := os.Stat(targetPath); err == nil && !info.IsDir() {
		start = filepath.Dir(targetPath)
	}
	manifest, ok, err := loadProjectManifest(start)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return manifest, nil
}
