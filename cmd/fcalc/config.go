package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jcgregorio/logger"
	"github.com/spf13/pflag"

	"github.com/zephyrtronium/fcalc"
)

// Config holds the settings for a session. Each field can come from the
// config file or from the flag of the same name.
type Config struct {
	// Prompt is printed before each line when reading from a terminal.
	Prompt string `toml:"prompt"`
	// Format is the printf verb for results.
	Format string `toml:"fmt"`
	// Color is "auto", "on", or "off".
	Color string `toml:"color"`
	// Echo prints the parse tree before each result.
	Echo bool `toml:"echo"`
	// Strict rejects characters that can't start a token.
	Strict bool `toml:"strict"`
	// LeftAssoc groups chains of same-precedence operators to the left.
	LeftAssoc bool `toml:"left-assoc"`
	// Normalize applies NFKC to input so that e.g. fullwidth digits work.
	Normalize bool `toml:"normalize"`
}

func defaultConfig() Config {
	return Config{
		Prompt:    "> ",
		Format:    "%g",
		Color:     "auto",
		Normalize: true,
	}
}

// defaultConfigPath returns the config file location under the user's config
// directory, or the empty string if there isn't one.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fcalc", "config.toml")
}

// loadConfig reads a config file over the defaults. A missing file is only an
// error if the path was given explicitly.
func loadConfig(path string, explicit bool, log *logger.Logger) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log.Debugf("no config file at %s", path)
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("couldn't load config: %w", err)
	}
	for _, key := range md.Undecoded() {
		log.Warningf("%s: unknown config key %q", path, key.String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded config from %s: %+v", path, cfg)
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on, or off, not %q", cfg.Color)
	}
	if !strings.Contains(cfg.Format, "%") {
		return fmt.Errorf("result format %q has no verb", cfg.Format)
	}
	return nil
}

// override replaces config values with flags the user set explicitly.
func (cfg *Config) override(flags *pflag.FlagSet) error {
	var err error
	set := func(name string, f func() error) {
		if err == nil && flags.Changed(name) {
			err = f()
		}
	}
	set("prompt", func() (e error) { cfg.Prompt, e = flags.GetString("prompt"); return })
	set("fmt", func() (e error) { cfg.Format, e = flags.GetString("fmt"); return })
	set("color", func() (e error) { cfg.Color, e = flags.GetString("color"); return })
	set("echo", func() (e error) { cfg.Echo, e = flags.GetBool("echo"); return })
	set("strict", func() (e error) { cfg.Strict, e = flags.GetBool("strict"); return })
	set("left-assoc", func() (e error) { cfg.LeftAssoc, e = flags.GetBool("left-assoc"); return })
	set("normalize", func() (e error) { cfg.Normalize, e = flags.GetBool("normalize"); return })
	if err != nil {
		return err
	}
	return cfg.validate()
}

// parseOptions returns the parsing options the config selects.
func (cfg *Config) parseOptions() []fcalc.ParseOption {
	var opts []fcalc.ParseOption
	if cfg.Strict {
		opts = append(opts, fcalc.Strict())
	}
	if cfg.LeftAssoc {
		opts = append(opts, fcalc.LeftAssociative())
	}
	return opts
}
