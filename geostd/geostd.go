// Package geostd loads Amber mol2, lib, and FRCMOD data for small organic
// molecules from the Amber GeoStd mirror (CAO Amber 2025 collection).
//
// Identifiers here can be Amber GeoStd/PDBe (these should match), or
// PubChem.
package geostd

import (
	"context"
	"encoding/json"
	"fmt"

	bioapis "github.com/David-OConnor/bio-apis"
)

// DefaultBaseURL is the GeoStd mirror host.
const DefaultBaseURL = "https://www.athanorlab.com"

// Client queries the GeoStd mirror.
type Client struct {
	*bioapis.Client
	BaseURL string
}

// NewClient creates a GeoStd client.
func NewClient(opts ...bioapis.Option) *Client {
	return NewClientWithBase(bioapis.NewClient(opts...))
}

// NewClientWithBase creates a GeoStd client from an existing shared client.
func NewClientWithBase(base *bioapis.Client) *Client {
	return &Client{Client: base, BaseURL: DefaultBaseURL}
}

// Item is a catalog entry: a molecule and which optional files it has.
type Item struct {
	Ident       string `json:"ident"`
	FrcmodAvail bool   `json:"frcmod_avail"`
	LibAvail    bool   `json:"lib_avail"`
}

// Data holds the text content of a molecule's parameter files. Frcmod and
// Lib are nil when the collection has no such file for the molecule.
type Data struct {
	Mol2   string  `json:"mol2"`
	Frcmod *string `json:"frcmod"`
	Lib    *string `json:"lib"`
}

type itemResponse struct {
	Result []Item `json:"result"`
}

// AllMols lists every molecule available from the mirror, with FRCMOD and
// lib availability flags.
func (c *Client) AllMols(ctx context.Context) ([]Item, error) {
	body, err := c.Get(ctx, c.BaseURL+"/get-all-mols")
	if err != nil {
		return nil, fmt.Errorf("listing molecules: %w", err)
	}

	var resp itemResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, bioapis.Decode(fmt.Errorf("parsing molecule list: %w", err))
	}
	return resp.Result, nil
}

// FindMols searches molecules by keyword.
func (c *Client) FindMols(ctx context.Context, searchText string) ([]Item, error) {
	payload := map[string]string{"search_text": searchText}

	body, err := c.PostJSON(ctx, c.BaseURL+"/find-mols", payload)
	if err != nil {
		return nil, fmt.Errorf("searching molecules: %w", err)
	}

	var resp itemResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, bioapis.Decode(fmt.Errorf("parsing search results: %w", err))
	}
	return resp.Result, nil
}

// LoadMolFiles downloads a molecule's mol2 text, and FRCMOD and lib text
// where available.
func (c *Client) LoadMolFiles(ctx context.Context, ident string) (*Data, error) {
	payload := map[string]string{"ident": ident}

	body, err := c.PostJSON(ctx, c.BaseURL+"/load-mol-files", payload)
	if err != nil {
		return nil, fmt.Errorf("loading files for %s: %w", ident, err)
	}

	var data Data
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, bioapis.Decode(fmt.Errorf("parsing files for %s: %w", ident, err))
	}
	return &data, nil
}
