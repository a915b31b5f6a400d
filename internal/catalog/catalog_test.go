package catalog

import (
	"strings"
	"testing"

	"github.com/yugabench/yugabench/internal/models"
)

func autoControl(id, section string, level models.ProfileLevel) Control {
	return Control{
		ID:           id,
		Title:        "control " + id,
		Section:      section,
		ProfileLevel: level,
		Automated:    true,
		Severity:     models.SeverityMedium,
		Checks: []CheckSpec{
			{Name: "check", Capability: Setting{Name: "ssl"}, Expect: BoolIs(true)},
		},
	}
}

func manualControl(id, section string, level models.ProfileLevel) Control {
	return Control{
		ID:           id,
		Title:        "control " + id,
		Section:      section,
		ProfileLevel: level,
		Automated:    false,
		Severity:     models.SeverityLow,
	}
}

func TestNew_ValidCatalogue(t *testing.T) {
	cat, err := New([]Control{
		autoControl("1.1", "Installation", models.Level1),
		manualControl("1.2", "Installation", models.Level1),
		autoControl("2.1", "Logging", models.Level2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("Len: got %d; want 3", cat.Len())
	}
	if got := cat.Sections(); len(got) != 2 || got[0] != "Installation" || got[1] != "Logging" {
		t.Errorf("Sections: got %v; want [Installation Logging]", got)
	}
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := New([]Control{
		autoControl("1.1", "Installation", models.Level1),
		autoControl("1.1", "Logging", models.Level1),
	})
	if err == nil {
		t.Fatal("want error for duplicate ID, got nil")
	}
	cerr, ok := err.(*CatalogueError)
	if !ok {
		t.Fatalf("want *CatalogueError, got %T", err)
	}
	if len(cerr.Problems) != 1 || !strings.Contains(cerr.Problems[0], "duplicate") {
		t.Errorf("unexpected problems: %v", cerr.Problems)
	}
}

// TestNew_CollectsAllProblems verifies validation does not stop at the first
// malformed control.
func TestNew_CollectsAllProblems(t *testing.T) {
	noChecks := autoControl("2.1", "Logging", models.Level1)
	noChecks.Checks = nil

	manualWithChecks := manualControl("2.2", "Logging", models.Level1)
	manualWithChecks.Checks = []CheckSpec{
		{Name: "x", Capability: Setting{Name: "ssl"}, Expect: BoolIs(true)},
	}

	badLevel := autoControl("2.3", "Logging", 7)

	_, err := New([]Control{
		{Title: "nameless", Section: "Logging", ProfileLevel: models.Level1},
		noChecks,
		manualWithChecks,
		badLevel,
	})
	cerr, ok := err.(*CatalogueError)
	if !ok {
		t.Fatalf("want *CatalogueError, got %v", err)
	}
	if len(cerr.Problems) != 4 {
		t.Errorf("want 4 problems, got %d: %v", len(cerr.Problems), cerr.Problems)
	}
}

func TestNew_MultiplePacksConcatenateInOrder(t *testing.T) {
	cat, err := New(
		[]Control{autoControl("1.1", "A", models.Level1)},
		[]Control{autoControl("2.1", "B", models.Level1), autoControl("2.2", "B", models.Level1)},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cat.IDs(); len(got) != 3 || got[0] != "1.1" || got[1] != "2.1" || got[2] != "2.2" {
		t.Errorf("IDs: got %v; want [1.1 2.1 2.2]", got)
	}
}

func TestSelect_DefaultProfileIsLevel1(t *testing.T) {
	cat, _ := New([]Control{
		autoControl("1.1", "A", models.Level1),
		autoControl("1.2", "A", models.Level2),
	})
	got := cat.Select(Filter{})
	if len(got) != 1 || got[0].ID != "1.1" {
		t.Errorf("zero-value filter must select level 1 only, got %v", ids(got))
	}
}

func TestSelect_Level2IncludesLevel1(t *testing.T) {
	cat, _ := New([]Control{
		autoControl("1.1", "A", models.Level1),
		autoControl("1.2", "A", models.Level2),
	})
	got := cat.Select(Filter{MaxProfile: models.Level2})
	if len(got) != 2 {
		t.Errorf("level 2 filter must include level 1 controls, got %v", ids(got))
	}
}

func TestSelect_SectionsNormalized(t *testing.T) {
	cat, _ := New([]Control{
		autoControl("1.1", "Connection and Login", models.Level1),
		autoControl("2.1", "Logging Monitoring and Auditing", models.Level1),
	})
	got := cat.Select(Filter{Sections: []string{"connection_and_login"}})
	if len(got) != 1 || got[0].ID != "1.1" {
		t.Errorf("section filter: got %v; want [1.1]", ids(got))
	}
	// Display-form names must match too.
	got = cat.Select(Filter{Sections: []string{"Connection and Login"}})
	if len(got) != 1 || got[0].ID != "1.1" {
		t.Errorf("display-form section filter: got %v; want [1.1]", ids(got))
	}
}

func TestSelect_ExcludeManual(t *testing.T) {
	cat, _ := New([]Control{
		autoControl("1.1", "A", models.Level1),
		manualControl("1.2", "A", models.Level1),
	})
	got := cat.Select(Filter{ExcludeManual: true})
	if len(got) != 1 || got[0].ID != "1.1" {
		t.Errorf("exclude-manual: got %v; want [1.1]", ids(got))
	}
}

// TestSelect_Pure verifies filtering never mutates the catalogue: two
// identical selections return identical control lists.
func TestSelect_Pure(t *testing.T) {
	cat, _ := New([]Control{
		autoControl("1.1", "A", models.Level1),
		manualControl("1.2", "A", models.Level1),
		autoControl("2.1", "B", models.Level2),
	})
	f := Filter{MaxProfile: models.Level2, ExcludeManual: true}
	first := ids(cat.Select(f))
	second := ids(cat.Select(f))
	if len(first) != len(second) {
		t.Fatalf("selection not repeatable: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("selection order changed at %d: %q vs %q", i, first[i], second[i])
		}
	}
	if cat.Len() != 3 {
		t.Errorf("catalogue mutated by Select: Len = %d", cat.Len())
	}
}

func TestNormalizeSection(t *testing.T) {
	cases := map[string]string{
		"Connection and Login":                 "connection_and_login",
		"  Logging Monitoring and Auditing  ":  "logging_monitoring_and_auditing",
		"special_configuration_considerations": "special_configuration_considerations",
	}
	for in, want := range cases {
		if got := NormalizeSection(in); got != want {
			t.Errorf("NormalizeSection(%q): got %q; want %q", in, got, want)
		}
	}
}

func ids(controls []Control) []string {
	out := make([]string, 0, len(controls))
	for _, c := range controls {
		out = append(out, c.ID)
	}
	return out
}
