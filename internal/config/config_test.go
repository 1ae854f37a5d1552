package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexirumah.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.WorkDir)
	assert.Equal(t, "", cfg.Inventory)
	assert.Equal(t, "unaligned.tsv", cfg.Artifacts.Unaligned)
	assert.Equal(t, "tap-cognates.tsv", cfg.Artifacts.AutoCognates)
	assert.Equal(t, "tap-cognates-mg.tsv", cfg.Artifacts.Resolved)
	assert.Equal(t, "tap-cognates-merged.tsv", cfg.Artifacts.Merged)
	assert.Equal(t, "tap-aligned.tsv", cfg.Artifacts.Aligned)
	assert.Equal(t, "tap-alignments-merged.tsv", cfg.Artifacts.Final)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, DefaultFamilies(), cfg.Families)
	assert.Empty(t, cfg.External.ClusterCommand)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
work_dir: /data/lexirumah
artifacts:
  final: final.tsv
external:
  align_command: ["align", "--in", "{input}", "--out", "{output}"]
log:
  level: debug
family_abbreviations:
  Trans-New Guinea: TNG
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/lexirumah", cfg.WorkDir)
	assert.Equal(t, "final.tsv", cfg.Artifacts.Final)
	assert.Equal(t, "unaligned.tsv", cfg.Artifacts.Unaligned, "unset artifact keeps its default")
	assert.Equal(t, []string{"align", "--in", "{input}", "--out", "{output}"}, cfg.External.AlignCommand)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, map[string]string{"Trans-New Guinea": "TNG"}, cfg.Families)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return *cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"level case-insensitive", func(c *Config) { c.Log.Level = "WARN" }, ""},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"no work dir", func(c *Config) { c.WorkDir = "" }, "work_dir"},
		{"empty artifact", func(c *Config) { c.Artifacts.Merged = "" }, "artifacts.merged"},
		{"shared artifact", func(c *Config) { c.Artifacts.Final = c.Artifacts.Aligned }, "already used"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
