// Package config loads magpie's settings from magpie.yml and the
// environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// DefaultExportDir is where export writes pages when nothing else is
// configured.
const DefaultExportDir = "pattern-docs"

// Config holds magpie's settings. Every field is optional: zero values fall
// back to the built-in definition set and DefaultExportDir.
type Config struct {
	// Catalog is the path of a definition set to load instead of the
	// built-in one.
	Catalog string

	// ExportDir is the directory export writes markdown pages into.
	ExportDir string
}

// Load reads magpie.yml from the current directory or the user's config
// directory, then applies MAGPIE_* environment overrides. A missing config
// file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("magpie")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, "magpie"))

	// MAGPIE_CATALOG and MAGPIE_EXPORT_DIR override the file.
	v.AutomaticEnv()
	v.SetEnvPrefix("MAGPIE")

	v.SetDefault("export_dir", DefaultExportDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read magpie.yml: %w", err)
		}
	}

	return &Config{
		Catalog:   v.GetString("catalog"),
		ExportDir: v.GetString("export_dir"),
	}, nil
}
