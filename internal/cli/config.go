// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"io/fs"
	"os"

	"cogentcore.org/dock/base/errors"
	"cogentcore.org/dock/base/iox"
	"cogentcore.org/dock/base/reflectx"
	"github.com/mitchellh/go-homedir"
)

// DefaultConfigFile is the config file read when no other
// is given with --config.
const DefaultConfigFile = "~/.config/dock/config.toml"

// Config is the configuration of the dock command.
type Config struct {

	// LayoutFile is the layout file that commands operate on.
	// Its extension selects JSON, TOML, or YAML.
	LayoutFile string `default:"layout.json"`

	// Format is the output format of show: tree, json, toml, or yaml.
	Format string `default:"tree"`

	// Color enables colored output when the terminal supports it.
	Color bool `default:"true"`
}

// LoadConfig returns the config from the given file, on top of the
// defaults. A missing file is not an error if it is the default file.
func LoadConfig(file string) (*Config, error) {
	cfg := &Config{}
	if err := reflectx.SetFromDefaultTags(cfg); err != nil {
		return nil, err
	}
	def := file == ""
	if def {
		file = DefaultConfigFile
	}
	path, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	if err := iox.Open(cfg, path); err != nil {
		if !def || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	cfg.LayoutFile, err = homedir.Expand(cfg.LayoutFile)
	return cfg, err
}

// exists returns whether the file exists.
func exists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}
