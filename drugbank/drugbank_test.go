package drugbank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSDFURL(t *testing.T) {
	c := NewClient()

	got := c.SDFURL("db00945")
	want := DefaultSDFBaseURL + "/DB00945.sdf?type=3d"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLoadSDF(t *testing.T) {
	const sdf = "aspirin\n  -OEChem-\n\nM  END\n$$$$\n"

	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(sdf))
	}))
	defer srv.Close()

	c := NewClient()
	c.SDFBaseURL = srv.URL

	got, err := c.LoadSDF(context.Background(), "db00945")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sdf {
		t.Errorf("unexpected SDF content: %q", got)
	}
	if gotPath != "/DB00945.sdf" || gotQuery != "type=3d" {
		t.Errorf("unexpected request %s?%s", gotPath, gotQuery)
	}
}
