package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jcgregorio/logger"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/fcalc"
)

type fauxSyncWriter struct {
	b bytes.Buffer
}

func (f *fauxSyncWriter) Write(p []byte) (n int, err error) {
	return f.b.Write(p)
}

func (f *fauxSyncWriter) Sync() error {
	return nil
}

func testLogger() (*logger.Logger, *fauxSyncWriter) {
	w := &fauxSyncWriter{}
	l := logger.NewFromOptions(&logger.Options{
		SyncWriter:   w,
		IncludeDebug: true,
	})
	return l, w
}

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
prompt = "calc> "
fmt = "%.2f"
color = "off"
left-assoc = true
bogus = 1
`)
	log, w := testLogger()
	cfg, err := loadConfig(path, true, log)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Prompt:    "calc> ",
		Format:    "%.2f",
		Color:     "off",
		LeftAssoc: true,
		Normalize: true,
	}, cfg)
	assert.Contains(t, w.b.String(), "bogus")
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	log, _ := testLogger()

	cfg, err := loadConfig(path, false, log)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	_, err = loadConfig(path, true, log)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err = loadConfig("", false, log)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	log, _ := testLogger()
	cases := map[string]string{
		"color":  `color = "sometimes"`,
		"format": `fmt = "result"`,
		"syntax": `prompt = `,
		"type":   `echo = "yes"`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, text), true, log)
			assert.Error(t, err)
		})
	}
}

func TestConfigOverride(t *testing.T) {
	flags := pflag.NewFlagSet("fcalc", pflag.ContinueOnError)
	addFlags(flags)
	require.NoError(t, flags.Parse([]string{"--fmt", "%e", "--strict", "--normalize=false"}))

	cfg := defaultConfig()
	cfg.Prompt = "calc> "
	cfg.LeftAssoc = true
	require.NoError(t, cfg.override(flags))
	assert.Equal(t, Config{
		Prompt:    "calc> ",
		Format:    "%e",
		Color:     "auto",
		Strict:    true,
		LeftAssoc: true,
		Normalize: false,
	}, cfg)

	bad := pflag.NewFlagSet("fcalc", pflag.ContinueOnError)
	addFlags(bad)
	require.NoError(t, bad.Parse([]string{"--color", "purple"}))
	cfg = defaultConfig()
	assert.Error(t, cfg.override(bad))
}

func TestConfigParseOptions(t *testing.T) {
	cfg := defaultConfig()
	assert.Empty(t, cfg.parseOptions())

	cfg.LeftAssoc = true
	r, err := fcalc.EvalString("10 - 3 - 2", cfg.parseOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 5.0, r)

	cfg.Strict = true
	_, err = fcalc.EvalString("2 $ 3", cfg.parseOptions()...)
	var ce *fcalc.CharError
	assert.ErrorAs(t, err, &ce)
}
