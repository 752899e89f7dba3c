// Package pdbe downloads ligand structure data from PDBe.
// https://www.ebi.ac.uk/pdbe/
package pdbe

import (
	"context"
	"fmt"
	"strings"

	bioapis "github.com/David-OConnor/bio-apis"
)

const (
	// OverviewBaseURL is the base for human-readable compound pages.
	OverviewBaseURL = "https://www.ebi.ac.uk/pdbe-srv/pdbechem/chemicalCompound/show"
	// DefaultSDFBaseURL is the base for static ligand structure files.
	DefaultSDFBaseURL = "https://www.ebi.ac.uk/pdbe/static/files/pdbechem_v2"
)

// Client downloads files from PDBe.
type Client struct {
	*bioapis.Client
	SDFBaseURL string
}

// NewClient creates a PDBe client.
func NewClient(opts ...bioapis.Option) *Client {
	return NewClientWithBase(bioapis.NewClient(opts...))
}

// NewClientWithBase creates a PDBe client from an existing shared client.
func NewClientWithBase(base *bioapis.Client) *Client {
	return &Client{Client: base, SDFBaseURL: DefaultSDFBaseURL}
}

// SDFURL returns the SDF download URL for a chemical component ID.
// This is the "ideal" coordinate set, not the "model" one.
func (c *Client) SDFURL(ident string) string {
	return fmt.Sprintf("%s/%s_ideal.sdf", c.SDFBaseURL, strings.ToUpper(ident))
}

// LoadSDF downloads an SDF file from PDBe, returning the SDF text.
func (c *Client) LoadSDF(ctx context.Context, ident string) (string, error) {
	return c.GetString(ctx, c.SDFURL(ident))
}

// OpenOverview opens the PDBe chemical component page in the default web
// browser.
func OpenOverview(id string) error {
	return bioapis.OpenInBrowser(OverviewBaseURL + "/" + id)
}
