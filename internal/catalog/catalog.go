// Package catalog holds the benchmark's rule catalogue: declarative control
// records grouped into section packs, validated once at load, and narrowed by
// a pure selection filter before execution.
package catalog

import (
	"fmt"
	"strings"

	"github.com/yugabench/yugabench/internal/models"
)

// CatalogueError reports a malformed catalogue. It is fatal at load time,
// before any target contact.
type CatalogueError struct {
	Problems []string
}

func (e *CatalogueError) Error() string {
	return fmt.Sprintf("invalid catalogue: %s", strings.Join(e.Problems, "; "))
}

// Catalog is the validated, ordered collection of controls. Immutable after New.
type Catalog struct {
	controls []Control
	sections []string
}

// New concatenates the given packs in order and validates the result.
// It fails fast with *CatalogueError when two controls share an ID, an ID is
// empty, a control references an undeclared profile level, an automated
// control has no checks, or a manual control carries checks.
func New(packs ...[]Control) (*Catalog, error) {
	var (
		controls []Control
		problems []string
		seenIDs  = make(map[string]struct{})
		seenSec  = make(map[string]struct{})
		sections []string
	)
	for _, pack := range packs {
		controls = append(controls, pack...)
	}
	for _, c := range controls {
		if c.ID == "" {
			problems = append(problems, fmt.Sprintf("control %q has an empty ID", c.Title))
			continue
		}
		if _, dup := seenIDs[c.ID]; dup {
			problems = append(problems, fmt.Sprintf("duplicate control ID %q", c.ID))
		}
		seenIDs[c.ID] = struct{}{}
		if !c.ProfileLevel.Valid() {
			problems = append(problems, fmt.Sprintf("control %s: unknown profile level %d", c.ID, c.ProfileLevel))
		}
		if c.Automated && len(c.Checks) == 0 {
			problems = append(problems, fmt.Sprintf("control %s: automated but has no checks", c.ID))
		}
		if !c.Automated && len(c.Checks) > 0 {
			problems = append(problems, fmt.Sprintf("control %s: manual controls must not declare checks", c.ID))
		}
		if _, ok := seenSec[c.Section]; !ok {
			seenSec[c.Section] = struct{}{}
			sections = append(sections, c.Section)
		}
	}
	if len(problems) > 0 {
		return nil, &CatalogueError{Problems: problems}
	}
	return &Catalog{controls: controls, sections: sections}, nil
}

// Controls returns every control in catalogue order.
func (c *Catalog) Controls() []Control { return c.controls }

// Sections returns the distinct section names in first-appearance order.
func (c *Catalog) Sections() []string { return c.sections }

// Len returns the number of catalogued controls.
func (c *Catalog) Len() int { return len(c.controls) }

// Filter narrows the catalogue before execution. Filtering is pure and
// preserves catalogue order.
type Filter struct {
	// MaxProfile includes every control whose level is at or below this tier
	// (Level 2 selects Level 1 and Level 2 controls).
	MaxProfile models.ProfileLevel

	// Sections restricts to the named sections when non-empty. Names are
	// matched in normalised form (lower case, underscores for spaces).
	Sections []string

	// ExcludeManual drops controls with Automated == false entirely; they do
	// not appear in the run result at all.
	ExcludeManual bool
}

// NormalizeSection converts a section name to its filter form,
// e.g. "Connection and Login" → "connection_and_login".
func NormalizeSection(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Select applies f and returns the surviving controls in catalogue order.
func (c *Catalog) Select(f Filter) []Control {
	max := f.MaxProfile
	if max == 0 {
		max = models.Level1
	}
	wanted := make(map[string]struct{}, len(f.Sections))
	for _, s := range f.Sections {
		wanted[NormalizeSection(s)] = struct{}{}
	}

	var out []Control
	for _, ctl := range c.controls {
		if ctl.ProfileLevel > max {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[NormalizeSection(ctl.Section)]; !ok {
				continue
			}
		}
		if f.ExcludeManual && !ctl.Automated {
			continue
		}
		out = append(out, ctl)
	}
	return out
}

// IDs returns every catalogued control ID in order. Used by policy validation.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.controls))
	for _, ctl := range c.controls {
		ids = append(ids, ctl.ID)
	}
	return ids
}
