package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

const singleLineRows = `<tr><td><a href="variables/B01001_001E.html" name="B01001_001E">B01001_001E</a></td><td>Estimate!!Total:</td></tr>
<tr><td><a href="variables/B01002_001E.html" name="B01002_001E">B01002_001E</a></td><td>Estimate!!Median age!!Total:</td></tr>
`

func readFixture(t *testing.T) string {
	t.Helper()
	blob, err := os.ReadFile(filepath.Join("testdata", "catalog_indent2.html"))
	if err != nil {
		t.Fatal(err)
	}
	return string(blob)
}

func TestExtractIndent2(t *testing.T) {
	records, err := Extract(readFixture(t), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("len=%d", len(records))
	}

	wantIDs := []string{"B01001_001E", "B01002_001E", "B01003_001E"}
	for i, want := range wantIDs {
		if records[i].Identifier != want {
			t.Fatalf("records[%d].Identifier=%q want %q", i, records[i].Identifier, want)
		}
	}
	if records[0].Label != "Estimate!!Total:" {
		t.Fatalf("label=%q", records[0].Label)
	}
}

func TestExtractSingleLine(t *testing.T) {
	records, err := Extract(singleLineRows, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("len=%d", len(records))
	}
	if records[0].Identifier != "B01001_001E" || records[1].Identifier != "B01002_001E" {
		t.Fatalf("identifiers=%q,%q", records[0].Identifier, records[1].Identifier)
	}
}

func TestExtractIndentIsExact(t *testing.T) {
	// Indented content does not match the single-line pattern and vice versa.
	records, err := Extract(readFixture(t), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("indent 0 matched indented rows: len=%d", len(records))
	}

	records, err = Extract(singleLineRows, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("indent 2 matched single-line rows: len=%d", len(records))
	}

	records, err = Extract(readFixture(t), 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("indent 4 matched 2-space rows: len=%d", len(records))
	}
}

func TestExtractSkipsNonVariableRows(t *testing.T) {
	// The fixture's header row and "for" metavariable row have no
	// GROUP_SUBGROUP anchor text and must not produce records.
	records, err := Extract(readFixture(t), 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range records {
		if rec.Identifier == "for" {
			t.Fatalf("metavariable row extracted: %+v", rec)
		}
	}
}

func TestExtractEmptyInput(t *testing.T) {
	records, err := Extract("", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("len=%d", len(records))
	}
}

func TestBuildRowPatternNegativeIndent(t *testing.T) {
	if _, err := BuildRowPattern(-1); err == nil {
		t.Fatal("expected error")
	}
}
