package rights

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeCatalogFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing catalog fixture: %v", err)
	}
	return path
}

func TestLoadCatalogJSON(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "rights.json", `[
		{
			"id": "child-allowance",
			"name": "קצבת ילדים",
			"amount_estimation": "150-300 ש\"ח לילד",
			"eligibility_criteria": {
				"has_children": true,
				"income_max": 15000
			}
		},
		{
			"id": "birth-grant",
			"name": "מענק לידה"
		}
	]`)

	catalog, err := LoadCatalog(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("expected 2 rights, got %d", catalog.Len())
	}

	right := catalog.FindByID("child-allowance")
	if right == nil {
		t.Fatal("expected to find child allowance")
	}
	if right.Eligibility == nil || right.Eligibility.IncomeMax == nil || *right.Eligibility.IncomeMax != 15000 {
		t.Fatalf("criteria not decoded: %+v", right.Eligibility)
	}
	if right.Eligibility.HasChildren == nil || !*right.Eligibility.HasChildren {
		t.Fatal("has_children not decoded")
	}
}

func TestLoadCatalogYAMLWrapped(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "rights.yaml", `
rights:
  - id: work-grant
    name: מענק עבודה
    amount_estimation: עד 4,000 ש"ח
  - id: rent-aid
    name: סיוע בשכר דירה
`)

	catalog, err := LoadCatalog(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("expected 2 rights, got %d", catalog.Len())
	}
	if catalog.FindByID("rent-aid") == nil {
		t.Fatal("expected to find rent aid")
	}
}

func TestLoadCatalogWeaklyTypedNumbers(t *testing.T) {
	t.Parallel()

	// Hand-curated data carries numbers as strings and floats.
	path := writeCatalogFile(t, "rights.json", `[
		{
			"id": "r1",
			"name": "זכות",
			"eligibility_criteria": {
				"age_min": "18",
				"income_max": 9000.0
			}
		}
	]`)

	catalog, err := LoadCatalog(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	right := catalog.FindByID("r1")
	if right == nil {
		t.Fatal("expected right to decode")
	}
	if right.Eligibility.AgeMin == nil || *right.Eligibility.AgeMin != 18 {
		t.Fatalf("age_min not coerced: %+v", right.Eligibility.AgeMin)
	}
	if right.Eligibility.IncomeMax == nil || *right.Eligibility.IncomeMax != 9000 {
		t.Fatalf("income_max not coerced: %+v", right.Eligibility.IncomeMax)
	}
}

func TestLoadCatalogSkipsMalformedRecords(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "rights.json", `[
		{"id": "good", "name": "זכות תקינה"},
		{"id": "broken", "name": "שבורה", "eligibility_criteria": {"age_min": {"nested": true}}},
		{"description": "ללא מזהה ושם"}
	]`)

	catalog, err := LoadCatalog(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("expected only the well-formed record, got %d: %v", catalog.Len(), catalog.Names())
	}
	if catalog.FindByID("good") == nil {
		t.Fatal("expected the well-formed record to survive")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop()); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadCatalogMalformedFile(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "rights.json", `{not json at all`)
	if _, err := LoadCatalog(path, zap.NewNop()); err == nil {
		t.Fatal("expected an error for an unparsable file")
	}
}
