package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/David-OConnor/bio-apis/geostd"
	"github.com/David-OConnor/bio-apis/rcsb"
)

func TestFormatPDBResultsJSON(t *testing.T) {
	results := []rcsb.PdbData{
		{RCSBID: "1ABC", Title: "First structure"},
		{RCSBID: "2DEF", Title: "Second structure"},
	}

	var buf bytes.Buffer
	if err := FormatPDBResults(&buf, results, Config{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}
	if len(parsed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(parsed))
	}
	if parsed[0]["rcsb_id"] != "1ABC" || parsed[0]["title"] != "First structure" {
		t.Errorf("unexpected first entry: %v", parsed[0])
	}
}

func TestFormatPDBResultsPlain(t *testing.T) {
	results := []rcsb.PdbData{{RCSBID: "1ABC", Title: "First structure"}}

	var buf bytes.Buffer
	if err := FormatPDBResults(&buf, results, Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "1ABC\tFirst structure\n" {
		t.Errorf("unexpected plain output %q", got)
	}
}

func TestFormatFilesAvailableJSON(t *testing.T) {
	avail := &rcsb.AvailableFiles{Validation: true, Map: true}

	var buf bytes.Buffer
	if err := FormatFilesAvailable(&buf, "1ABC", avail, Config{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["rcsb_id"] != "1ABC" {
		t.Errorf("expected rcsb_id 1ABC, got %v", parsed["rcsb_id"])
	}
	if parsed["validation"] != true || parsed["map"] != true || parsed["structure_factors"] != false {
		t.Errorf("unexpected availability: %v", parsed)
	}
}

func TestFormatGeostdItemsPlain(t *testing.T) {
	items := []geostd.Item{{Ident: "ATP", FrcmodAvail: true, LibAvail: false}}

	var buf bytes.Buffer
	if err := FormatGeostdItems(&buf, items, Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "ATP") {
		t.Errorf("expected ATP in output, got %q", buf.String())
	}
}

func TestFormatCIDsPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatCIDs(&buf, []uint32{2244, 702}, Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "2244\n702\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	if got := truncate("a long structure title", 10); got != "a long st…" {
		t.Errorf("unexpected truncation %q", got)
	}
}
