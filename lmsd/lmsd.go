// Package lmsd downloads structure data from the LIPID MAPS Structure
// Database. https://www.lipidmaps.org/
package lmsd

import (
	"context"
	"strings"

	bioapis "github.com/David-OConnor/bio-apis"
)

// DefaultBaseURL is the LMSD record base URL; records and their SDF
// downloads share it.
const DefaultBaseURL = "https://www.lipidmaps.org/databases/lmsd"

// Client downloads files from LIPID MAPS.
type Client struct {
	*bioapis.Client
	BaseURL string
}

// NewClient creates a LIPID MAPS client.
func NewClient(opts ...bioapis.Option) *Client {
	return NewClientWithBase(bioapis.NewClient(opts...))
}

// NewClientWithBase creates a LIPID MAPS client from an existing shared client.
func NewClientWithBase(base *bioapis.Client) *Client {
	return &Client{Client: base, BaseURL: DefaultBaseURL}
}

// SDFURL returns the SDF download URL for an LM ID. The SDF served is 2D.
func (c *Client) SDFURL(ident string) string {
	return c.BaseURL + "/" + strings.ToUpper(ident) + "?format=sdf"
}

// LoadSDF downloads an SDF file from LIPID MAPS, returning the SDF text.
func (c *Client) LoadSDF(ctx context.Context, ident string) (string, error) {
	return c.GetString(ctx, c.SDFURL(ident))
}

// OpenOverview opens the LMSD record page in the default web browser.
func OpenOverview(ident string) error {
	return bioapis.OpenInBrowser(DefaultBaseURL + "/" + strings.ToUpper(ident))
}
