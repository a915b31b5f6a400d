package policy

import (
	"strings"

	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/models"
)

// Apply returns a copy of controls with severity overrides applied, plus the
// skip set for disabled controls (ID → reason). Disabled controls are not
// removed: the executor reports them SKIPPED so the run result stays complete.
// A nil config is a no-op.
func Apply(controls []catalog.Control, cfg *Config) ([]catalog.Control, map[string]string) {
	skip := make(map[string]string)
	if cfg == nil {
		return controls, skip
	}

	out := make([]catalog.Control, len(controls))
	copy(out, controls)

	for i := range out {
		ccfg, ok := cfg.Controls[out[i].ID]
		if !ok {
			continue
		}
		if ccfg.Enabled != nil && !*ccfg.Enabled {
			skip[out[i].ID] = "disabled by policy"
		}
		if ccfg.Severity != "" {
			out[i].Severity = models.Severity(strings.ToUpper(ccfg.Severity))
		}
	}
	return out, skip
}
