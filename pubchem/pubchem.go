// Package pubchem queries the PubChem PUG-REST API.
// https://pubchem.ncbi.nlm.nih.gov/docs/pug-rest
package pubchem

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	bioapis "github.com/David-OConnor/bio-apis"
)

const (
	// DefaultBaseURL is the PUG-REST base URL.
	DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	// OverviewBaseURL is the base for human-readable compound pages.
	OverviewBaseURL = "https://pubchem.ncbi.nlm.nih.gov/compound"

	// RequestsPerSecond is NCBI's request-rate policy for unkeyed clients.
	RequestsPerSecond = 5
)

// Client queries PubChem. It wraps the shared bioapis.Client with a rate
// limiter per NCBI policy.
type Client struct {
	*bioapis.Client
	BaseURL string
}

// NewClient creates a PubChem client.
func NewClient(opts ...bioapis.Option) *Client {
	base := append([]bioapis.Option{bioapis.WithRateLimit(RequestsPerSecond)}, opts...)
	return &Client{
		Client:  bioapis.NewClient(base...),
		BaseURL: DefaultBaseURL,
	}
}

// NewClientWithBase creates a PubChem client from an existing shared client.
func NewClientWithBase(base *bioapis.Client) *Client {
	return &Client{Client: base, BaseURL: DefaultBaseURL}
}

// identifierListResponse is the shape returned by cids-style operations.
type identifierListResponse struct {
	IdentifierList struct {
		CID []uint32 `json:"CID"`
	} `json:"IdentifierList"`
}

// recordResponse is the shape returned by the compound record operation.
type recordResponse struct {
	PCCompounds []struct {
		ID struct {
			ID struct {
				CID uint32 `json:"cid"`
			} `json:"id"`
		} `json:"id"`
	} `json:"PC_Compounds"`
}

// SimilarCIDs runs a fast 3D similarity search keyed on cid and returns the
// matching compound IDs in response order. An empty match set is an empty
// slice, not an error.
func (c *Client) SimilarCIDs(ctx context.Context, cid uint32) ([]uint32, error) {
	ids := []string{strconv.FormatUint(uint64(cid), 10)}
	body, err := c.Query(ctx, DomainCompound, NamespaceFastSimilarity3DCID, ids, OpCIDs())
	if err != nil {
		return nil, fmt.Errorf("similarity search for CID %d: %w", cid, err)
	}

	var resp identifierListResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, bioapis.Decode(fmt.Errorf("parsing similarity response: %w", err))
	}

	if resp.IdentifierList.CID == nil {
		return []uint32{}, nil
	}
	return resp.IdentifierList.CID, nil
}

// CIDsForName looks up compound IDs by name, one per matching record, in
// response order. Duplicates are preserved.
func (c *Client) CIDsForName(ctx context.Context, name string) ([]uint32, error) {
	body, err := c.Query(ctx, DomainCompound, NamespaceName, []string{name}, OpRecord())
	if err != nil {
		return nil, fmt.Errorf("name lookup %q: %w", name, err)
	}

	var resp recordResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, bioapis.Decode(fmt.Errorf("parsing record response: %w", err))
	}

	cids := make([]uint32, 0, len(resp.PCCompounds))
	for _, rec := range resp.PCCompounds {
		cids = append(cids, rec.ID.ID.CID)
	}
	return cids, nil
}

// SDFURL returns the 3D conformer SDF download URL for an identifier.
func SDFURL(ident string) string {
	return "https://pubchem.ncbi.nlm.nih.gov/rest/pug/conformers/0000FE0400000001/SDF" +
		"?response_type=save&response_basename=Conformer3D_COMPOUND_CID_" +
		strings.ToUpper(ident)
}

// LoadSDF downloads an SDF file from PubChem, returning the SDF text.
func (c *Client) LoadSDF(ctx context.Context, ident string) (string, error) {
	return c.GetString(ctx, SDFURL(ident))
}

// OpenOverview opens the PubChem compound page in the default web browser.
func OpenOverview(cid uint32) error {
	return bioapis.OpenInBrowser(fmt.Sprintf("%s/%d", OverviewBaseURL, cid))
}
