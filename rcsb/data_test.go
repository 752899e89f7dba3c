package rcsb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMetadata(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{
			"struct":{"title":"Crystal structure of test protein"},
			"rcsb_primary_citation":{"title":"A test structure at 1.5 A"}
		}`)
	}))
	defer srv.Close()

	meta, err := newTestClient(srv).Metadata(context.Background(), "1ABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/entry/1ABC" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if meta.Title != "Crystal structure of test protein" {
		t.Errorf("unexpected title %q", meta.Title)
	}
	if meta.PrimaryCitationTitle != "A test structure at 1.5 A" {
		t.Errorf("unexpected citation title %q", meta.PrimaryCitationTitle)
	}
}

func TestAllData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"struct":{"title":"Test"},
			"database2":[{"database_code":"1ABC","database_id":"PDB"}],
			"cell":{"angle_alpha":90,"angle_beta":90,"angle_gamma":90,
				"length_a":50.1,"length_b":60.2,"length_c":70.3,"zpdb":4},
			"citation":[{"id":"primary","journal_abbrev":"Nature",
				"journal_volume":"600","page_first":"100","page_last":"105",
				"rcsb_is_primary":"Y","rcsb_journal_abbrev":"Nature",
				"title":"Paper title","year":2021}],
			"pdbx_database_status":{"pdb_format_compatible":"Y",
				"process_site":"RCSB","recvd_initial_deposition_date":"2021-01-01",
				"status_code":"REL"},
			"rcsb_entry_info":{"assembly_count":1,"entity_count":2,
				"experimental_method":"X-ray","molecular_weight":42.5,
				"polymer_entity_count_protein":1}
		}`)
	}))
	defer srv.Close()

	data, err := newTestClient(srv).AllData(context.Background(), "1ABC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Struct.Title != "Test" {
		t.Errorf("unexpected title %q", data.Struct.Title)
	}
	if data.Cell == nil || data.Cell.LengthA != 50.1 || data.Cell.ZPDB != 4 {
		t.Errorf("unexpected cell %+v", data.Cell)
	}
	if len(data.Citation) != 1 || data.Citation[0].JournalVolume != "600" {
		t.Errorf("unexpected citation %+v", data.Citation)
	}
	if data.PdbxDatabaseStatus.StatusCode != "REL" {
		t.Errorf("unexpected status %+v", data.PdbxDatabaseStatus)
	}
	if data.EntryInfo.ExperimentalMethod != "X-ray" || data.EntryInfo.MolecularWeight != 42.5 {
		t.Errorf("unexpected entry info %+v", data.EntryInfo)
	}
}

func TestAllData_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `<html>internal error</html>`)
	}))
	defer srv.Close()

	// A 500 with an HTML body is a successful transport call whose body
	// fails to parse.
	if _, err := newTestClient(srv).AllData(context.Background(), "1ABC"); err == nil {
		t.Fatal("expected a decode error")
	}
}
