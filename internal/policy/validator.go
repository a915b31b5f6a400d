package policy

import (
	"fmt"
	"strings"
)

// validSeverities is the set of allowed severity strings (upper-case canonical form).
var validSeverities = map[string]struct{}{
	"CRITICAL": {},
	"HIGH":     {},
	"MEDIUM":   {},
	"LOW":      {},
}

// Validate checks cfg for semantic correctness and returns all validation
// errors found. An empty slice means the config is valid.
//
// Checks performed:
//   - version must be 1
//   - fail_threshold must be >= 0
//   - control IDs must appear in knownControlIDs
//   - severity overrides must be valid severity values if set
//
// All errors are collected before returning; Validate never stops at the
// first error.
func Validate(cfg *Config, knownControlIDs []string) []error {
	if cfg == nil {
		return []error{fmt.Errorf("policy config is nil")}
	}

	knownIDs := make(map[string]struct{}, len(knownControlIDs))
	for _, id := range knownControlIDs {
		knownIDs[id] = struct{}{}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, fmt.Errorf("version: unsupported value %d; must be 1", cfg.Version))
	}
	if cfg.FailThreshold < 0 {
		errs = append(errs, fmt.Errorf("fail_threshold: must be >= 0, got %d", cfg.FailThreshold))
	}

	for id, ccfg := range cfg.Controls {
		if _, ok := knownIDs[id]; !ok {
			errs = append(errs, fmt.Errorf("controls.%s: unknown control ID", id))
		}
		if ccfg.Severity != "" {
			if _, ok := validSeverities[strings.ToUpper(ccfg.Severity)]; !ok {
				errs = append(errs, fmt.Errorf("controls.%s: invalid severity %q", id, ccfg.Severity))
			}
		}
	}

	return errs
}
