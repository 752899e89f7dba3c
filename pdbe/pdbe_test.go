package pdbe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSDFURL(t *testing.T) {
	c := NewClient()

	got := c.SDFURL("atp")
	want := DefaultSDFBaseURL + "/ATP_ideal.sdf"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLoadSDF(t *testing.T) {
	const sdf = "ATP\n\n\nM  END\n$$$$\n"

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(sdf))
	}))
	defer srv.Close()

	c := NewClient()
	c.SDFBaseURL = srv.URL

	got, err := c.LoadSDF(context.Background(), "atp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sdf {
		t.Errorf("unexpected SDF content: %q", got)
	}
	if gotPath != "/ATP_ideal.sdf" {
		t.Errorf("unexpected path %q", gotPath)
	}
}
