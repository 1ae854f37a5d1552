package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values no run can work with.
func (c *Config) Validate() error {
	var errs []error

	if c.WorkDir == "" {
		errs = append(errs, errors.New("work_dir is required"))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}

	names := map[string]string{
		"unaligned":     c.Artifacts.Unaligned,
		"auto_cognates": c.Artifacts.AutoCognates,
		"resolved":      c.Artifacts.Resolved,
		"merged":        c.Artifacts.Merged,
		"aligned":       c.Artifacts.Aligned,
		"final":         c.Artifacts.Final,
	}
	seen := make(map[string]string, len(names))
	for _, key := range []string{"unaligned", "auto_cognates", "resolved", "merged", "aligned", "final"} {
		name := names[key]
		if name == "" {
			errs = append(errs, fmt.Errorf("artifacts.%s is required", key))
			continue
		}
		if other, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("artifacts.%s: %q already used by artifacts.%s", key, name, other))
		}
		seen[name] = key
	}

	return errors.Join(errs...)
}
