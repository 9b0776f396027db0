package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noRonTomlMessage = "no ron.toml found\nplease specify the document explicitly, e.g.:\n  ron load path/to/config.ron"

type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Package packageConfig `toml:"package"`
	Load    loadConfig    `toml:"load"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type loadConfig struct {
	Entry string `toml:"entry"`
}

// EntryPath returns the manifest's entry document as a filesystem path.
func (m *manifest) EntryPath() string {
	return filepath.Join(m.Root, filepath.FromSlash(strings.TrimSpace(m.Config.Load.Entry)))
}

// findRonToml walks from startDir towards the filesystem root looking
// for a ron.toml.
func findRonToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ron.toml")
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

func loadManifest(startDir string) (*manifest, bool, error) {
	manifestPath, ok, err := findRonToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadManifestConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadManifestConfig(path string) (manifestConfig, error) {
	var cfg manifestConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return manifestConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return manifestConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return manifestConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("load", "entry") || strings.TrimSpace(cfg.Load.Entry) == "" {
		return manifestConfig{}, fmt.Errorf("%s: missing [load].entry", path)
	}
	return cfg, nil
}
