// Copyright 2024 The Peeknotes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli holds the configuration and logging shared by the commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/text/unicode/norm"
)

// A Config is the configuration of a command.
//
// Settings come from, in increasing priority: defaults, a markdownkit.yaml
// file in the current directory or the user config directory,
// MARKDOWNKIT_* environment variables, and command-line flags.
type Config struct {
	Normalize  bool   `mapstructure:"normalize"`   // NFC-normalize input before parsing
	LogLevel   string `mapstructure:"log_level"`   // zerolog level name
	HeadingIDs bool   `mapstructure:"heading_ids"` // md2html: add ids to headings
	Format     string `mapstructure:"format"`      // mddump: output format
}

// Dirs lists the directories searched for markdownkit.yaml.
// Tests replace it.
var Dirs = func() []string {
	dirs := []string{"."}
	if d, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(d, "markdownkit"))
	}
	return dirs
}

// Load returns the configuration, with the flags set in fs
// overriding every other source. Flag names use dashes
// where configuration keys use underscores.
func Load(fs *flag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault("normalize", true)
	v.SetDefault("log_level", "warn")
	v.SetDefault("heading_ids", false)
	v.SetDefault("format", "tree")

	v.SetConfigName("markdownkit")
	v.SetConfigType("yaml")
	for _, d := range Dirs() {
		v.AddConfigPath(d)
	}
	v.SetEnvPrefix("markdownkit")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) {
			v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
		})
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

// Input returns data as text ready for parsing.
func (c Config) Input(data []byte) string {
	if c.Normalize {
		return norm.NFC.String(string(data))
	}
	return string(data)
}

// Logger returns a logger for the named command writing to w.
// On a terminal the output is human-readable; otherwise it is JSON.
func (c Config) Logger(name string, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		level = zerolog.WarnLevel
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		w = zerolog.ConsoleWriter{Out: f}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("cmd", name).Logger()
}
