package radalbum

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-album settings file inside the input directory.
const ConfigFile = "album.yaml"

// Config holds configuration for radalbum.
type Config struct {
	InDir     string
	OutDir    string
	Title     string
	AssetsDir string
}

// fileConfig is the on-disk form of ConfigFile.
type fileConfig struct {
	Title  string `yaml:"title"`
	Assets string `yaml:"assets"`
}

// LoadConfig fills unset fields of c from the ConfigFile in c.InDir, if there is one.
// Relative asset paths are resolved against c.InDir.
func LoadConfig(c *Config) error {
	path := filepath.Join(c.InDir, ConfigFile)
	bs, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	fc := fileConfig{}
	if err := yaml.Unmarshal(bs, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if c.Title == "" {
		c.Title = fc.Title
	}
	if c.AssetsDir == "" && fc.Assets != "" {
		c.AssetsDir = fc.Assets
		if !filepath.IsAbs(c.AssetsDir) {
			c.AssetsDir = filepath.Join(c.InDir, c.AssetsDir)
		}
	}
	return nil
}
