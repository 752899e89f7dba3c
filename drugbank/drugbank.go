// Package drugbank downloads structure data from DrugBank.
// https://docs.drugbank.com/v1/
package drugbank

import (
	"context"
	"fmt"
	"strings"

	bioapis "github.com/David-OConnor/bio-apis"
)

const (
	// OverviewBaseURL is the base for human-readable drug pages.
	OverviewBaseURL = "https://go.drugbank.com/drugs"
	// DefaultSDFBaseURL is the base for small-molecule structure files.
	DefaultSDFBaseURL = "https://go.drugbank.com/structures/small_molecule_drugs"
)

// Client downloads files from DrugBank.
type Client struct {
	*bioapis.Client
	SDFBaseURL string
}

// NewClient creates a DrugBank client.
func NewClient(opts ...bioapis.Option) *Client {
	return NewClientWithBase(bioapis.NewClient(opts...))
}

// NewClientWithBase creates a DrugBank client from an existing shared client.
func NewClientWithBase(base *bioapis.Client) *Client {
	return &Client{Client: base, SDFBaseURL: DefaultSDFBaseURL}
}

// SDFURL returns the 3D SDF download URL for a DrugBank ID.
func (c *Client) SDFURL(ident string) string {
	return fmt.Sprintf("%s/%s.sdf?type=3d", c.SDFBaseURL, strings.ToUpper(ident))
}

// LoadSDF downloads an SDF file from DrugBank, returning the SDF text.
func (c *Client) LoadSDF(ctx context.Context, ident string) (string, error) {
	return c.GetString(ctx, c.SDFURL(ident))
}

// OpenOverview opens the DrugBank drug page in the default web browser.
func OpenOverview(id string) error {
	return bioapis.OpenInBrowser(OverviewBaseURL + "/" + id)
}
