// Package config holds the settings of a pipeline run.
package config

// Config is the full run configuration. Values come from an optional YAML
// file, then env-default tags; command-line flags override both.
type Config struct {
	// WorkDir holds every stage artifact.
	WorkDir string `yaml:"work_dir" env-default:"."`
	// Inventory is a phonetic inventory YAML file; empty selects the built-in one.
	Inventory string `yaml:"inventory"`
	// MetricsFile, if set, receives the run's metrics in Prometheus text format.
	MetricsFile string `yaml:"metrics_file"`

	Artifacts ArtifactConfig `yaml:"artifacts"`
	External  ExternalConfig `yaml:"external"`
	Log       LogConfig      `yaml:"log"`

	// Families abbreviates language family names in display doculect labels.
	Families map[string]string `yaml:"family_abbreviations"`
}

// ArtifactConfig names the stage artifacts inside WorkDir.
type ArtifactConfig struct {
	Unaligned    string `yaml:"unaligned"     env-default:"unaligned.tsv"`
	AutoCognates string `yaml:"auto_cognates" env-default:"tap-cognates.tsv"`
	Resolved     string `yaml:"resolved"      env-default:"tap-cognates-mg.tsv"`
	Merged       string `yaml:"merged"        env-default:"tap-cognates-merged.tsv"`
	Aligned      string `yaml:"aligned"       env-default:"tap-aligned.tsv"`
	Final        string `yaml:"final"         env-default:"tap-alignments-merged.tsv"`
}

// ExternalConfig configures the external clustering and alignment commands.
// Arguments may contain the placeholders {input} and {output}. An empty
// command means the operator provides the stage output.
type ExternalConfig struct {
	ClusterCommand []string `yaml:"cluster_command"`
	AlignCommand   []string `yaml:"align_command"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `yaml:"level"  env-default:"info"`
	Format string `yaml:"format" env-default:"text"`
}

// DefaultFamilies are the family abbreviations used when none are configured.
func DefaultFamilies() map[string]string {
	return map[string]string{
		"Austronesian":      "AN",
		"Timor-Alor-Pantar": "TAP",
	}
}
