package policy

// Config is the optional run-policy file. It tunes the released catalogue
// without code changes: the fail threshold, per-control disables, and
// per-control severity overrides.
type Config struct {
	Version       int                      `yaml:"version"`
	FailThreshold int                      `yaml:"fail_threshold"`
	Controls      map[string]ControlConfig `yaml:"controls"`
}

// ControlConfig overrides one catalogued control.
type ControlConfig struct {
	// Enabled, when set to false, resolves the control SKIPPED without
	// executing it. Nil means enabled.
	Enabled *bool `yaml:"enabled,omitempty"`

	// Severity overrides the catalogued severity (CRITICAL/HIGH/MEDIUM/LOW).
	Severity string `yaml:"severity,omitempty"`
}
