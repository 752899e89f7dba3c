package rcsb

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bioapis "github.com/David-OConnor/bio-apis"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	gz.Close()
	return buf.Bytes()
}

func TestLoadCIF(t *testing.T) {
	const cif = "data_1ABC\n_struct.title 'Test structure'\n"

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(gzipBytes(t, []byte(cif)))
	}))
	defer srv.Close()

	got, err := newTestClient(srv).LoadCIF(context.Background(), "1abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cif {
		t.Errorf("unexpected CIF content: %q", got)
	}
	// Idents are uppercased in download URLs.
	if gotPath != "/download/1ABC.cif.gz" {
		t.Errorf("unexpected path %q", gotPath)
	}
}

func TestLoadStructureFactorsCIF_Path(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(gzipBytes(t, []byte("data_r1abcsf\n")))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).LoadStructureFactorsCIF(context.Background(), "1abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/download/1ABC-sf.cif.gz" {
		t.Errorf("unexpected path %q", gotPath)
	}
}

func TestValidationURLs(t *testing.T) {
	c := NewClient()
	c.FileBaseURL = "https://files.example.org"

	cases := []struct {
		build func(string) (string, error)
		want  string
	}{
		{c.validationCifGzURL, "https://files.example.org/validation/download/1abc_validation.cif.gz"},
		{c.validation2FoFcCifGzURL, "https://files.example.org/validation/download/1abc_validation_2fo-fc_map_coef.cif.gz"},
		{c.validationFoFcCifGzURL, "https://files.example.org/validation/download/1abc_validation_fo-fc_map_coef.cif.gz"},
	}
	for _, tc := range cases {
		got, err := tc.build("1abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestValidationURL_ShortIdent(t *testing.T) {
	c := NewClient()

	_, err := c.validationCifGzURL("1a")
	if err == nil {
		t.Fatal("expected an error for an ident shorter than 3 characters")
	}
	if !bioapis.IsLocalIO(err) {
		t.Errorf("expected a local io error, got: %v", err)
	}
}

func TestLoadValidationCIF_ShortIdent(t *testing.T) {
	// No server: the ident check must fail before any network call.
	if _, err := NewClient().LoadValidationCIF(context.Background(), "1a"); err == nil {
		t.Fatal("expected an error for a short ident")
	}
}

func TestMapGzURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"struct":{"title":"x"},"database2":[
			{"database_code":"1ABC","database_id":"PDB"},
			{"database_code":"EMD-39757","database_id":"EMDB"}
		]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	url, err := c.MapGzURL(context.Background(), "1abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := c.FileBaseURL + "/pub/emdb/structures/EMD-39757/map/emd_39757.map.gz"
	if url != want {
		t.Errorf("expected %q, got %q", want, url)
	}
}

func TestMapGzURL_NoEMDB(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"struct":{"title":"x"},"database2":[{"database_code":"1ABC","database_id":"PDB"}]}`)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).MapGzURL(context.Background(), "1abc"); err == nil {
		t.Fatal("expected an error for an entry without an EMDB reference")
	}
}

func TestFilesAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/entry/") {
			fmt.Fprint(w, `{"struct":{"title":"x"},"database2":[]}`)
			return
		}
		// Only validation and structure factors exist for this entry.
		switch r.URL.Path {
		case "/validation/download/1abc_validation.cif.gz",
			"/download/1ABC-sf.cif":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	avail, err := newTestClient(srv).FilesAvailable(context.Background(), "1abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := AvailableFiles{Validation: true, StructureFactors: true}
	if *avail != want {
		t.Errorf("expected %+v, got %+v", want, *avail)
	}
}

func TestFilesAvailable_ShortIdent(t *testing.T) {
	_, err := NewClient().FilesAvailable(context.Background(), "1a")
	if err == nil {
		t.Fatal("expected an error for a short ident")
	}
	if !bioapis.IsLocalIO(err) {
		t.Errorf("expected a local io error, got: %v", err)
	}
}
