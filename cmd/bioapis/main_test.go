package main

import (
	"strings"
	"testing"
)

func TestLoadSDF_UnknownService(t *testing.T) {
	_, err := loadSDF(sdfCmd, "uniprot", "P12345")
	if err == nil {
		t.Fatal("expected an error for an unknown service")
	}
	if !strings.Contains(err.Error(), "uniprot") {
		t.Errorf("expected the service name in the error, got: %v", err)
	}
}

func TestOpenBrowser_UnknownService(t *testing.T) {
	if err := openBrowser("uniprot", "P12345"); err == nil {
		t.Fatal("expected an error for an unknown service")
	}
}

func TestOpenBrowser_InvalidCID(t *testing.T) {
	if err := openBrowser("pubchem", "not-a-number"); err == nil {
		t.Fatal("expected an error for a non-numeric CID")
	}
}
