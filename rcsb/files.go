package rcsb

import (
	"context"
	"fmt"
	"strings"

	bioapis "github.com/David-OConnor/bio-apis"
)

func (c *Client) cifURL(ident string) string {
	return c.FileBaseURL + "/download/" + strings.ToUpper(ident) + ".cif"
}

func (c *Client) cifGzURL(ident string) string {
	return c.cifURL(ident) + ".gz"
}

func (c *Client) structureFactorsCifURL(ident string) string {
	return c.FileBaseURL + "/download/" + strings.ToUpper(ident) + "-sf.cif"
}

func (c *Client) structureFactorsCifGzURL(ident string) string {
	return c.structureFactorsCifURL(ident) + ".gz"
}

// validationBaseURL is the shared prefix of the three validation file
// variants. It is fallible: the ident forms part of the URL path.
func (c *Client) validationBaseURL(ident string) (string, error) {
	if len(ident) < 3 {
		return "", bioapis.LocalIO(fmt.Errorf("PDB ID %q must be at least 3 characters", ident))
	}
	return c.FileBaseURL + "/validation/download/" + ident + "_validation", nil
}

func (c *Client) validationCifGzURL(ident string) (string, error) {
	base, err := c.validationBaseURL(ident)
	if err != nil {
		return "", err
	}
	return base + ".cif.gz", nil
}

func (c *Client) validation2FoFcCifGzURL(ident string) (string, error) {
	base, err := c.validationBaseURL(ident)
	if err != nil {
		return "", err
	}
	return base + "_2fo-fc_map_coef.cif.gz", nil
}

func (c *Client) validationFoFcCifGzURL(ident string) (string, error) {
	base, err := c.validationBaseURL(ident)
	if err != nil {
		return "", err
	}
	return base + "_fo-fc_map_coef.cif.gz", nil
}

// MapGzURL finds the EMDB map download URL for an entry, via the entry's
// database2 cross-references. Entries without an EMDB reference have no
// map file; that is an error here.
func (c *Client) MapGzURL(ctx context.Context, ident string) (string, error) {
	data, err := c.AllData(ctx, ident)
	if err != nil {
		return "", err
	}

	for _, db := range data.Database2 {
		if db.DatabaseID == "EMDB" {
			code := db.DatabaseCode
			file := strings.ToLower(strings.ReplaceAll(code, "-", "_"))
			return fmt.Sprintf("%s/pub/emdb/structures/%s/map/%s.map.gz",
				c.FileBaseURL, code, file), nil
		}
	}
	return "", fmt.Errorf("no EMDB reference for %s", ident)
}

func (c *Client) loadGzString(ctx context.Context, url string) (string, error) {
	b, err := c.GetGzip(ctx, url)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadCIF downloads the atomic-coordinates mmCIF file for an entry,
// returning the CIF text. The compressed (.gz) variant is fetched and
// decompressed to save bandwidth.
func (c *Client) LoadCIF(ctx context.Context, ident string) (string, error) {
	return c.loadGzString(ctx, c.cifGzURL(ident))
}

// LoadValidationCIF downloads the validation mmCIF file for an entry.
func (c *Client) LoadValidationCIF(ctx context.Context, ident string) (string, error) {
	url, err := c.validationCifGzURL(ident)
	if err != nil {
		return "", err
	}
	return c.loadGzString(ctx, url)
}

// LoadValidation2FoFcCIF downloads the 2Fo-Fc map coefficient mmCIF file.
func (c *Client) LoadValidation2FoFcCIF(ctx context.Context, ident string) (string, error) {
	url, err := c.validation2FoFcCifGzURL(ident)
	if err != nil {
		return "", err
	}
	return c.loadGzString(ctx, url)
}

// LoadValidationFoFcCIF downloads the Fo-Fc map coefficient mmCIF file.
func (c *Client) LoadValidationFoFcCIF(ctx context.Context, ident string) (string, error) {
	url, err := c.validationFoFcCifGzURL(ident)
	if err != nil {
		return "", err
	}
	return c.loadGzString(ctx, url)
}

// LoadStructureFactorsCIF downloads the structure factors mmCIF file
// (e.g. measured reflection data) for an entry.
func (c *Client) LoadStructureFactorsCIF(ctx context.Context, ident string) (string, error) {
	return c.loadGzString(ctx, c.structureFactorsCifGzURL(ident))
}

// LoadMap downloads the EMDB electron density map for an entry, if one
// exists, returning the decompressed bytes.
func (c *Client) LoadMap(ctx context.Context, ident string) ([]byte, error) {
	url, err := c.MapGzURL(ctx, ident)
	if err != nil {
		return nil, err
	}
	return c.GetGzip(ctx, url)
}

// AvailableFiles reports which optional data files exist for an entry.
type AvailableFiles struct {
	Validation       bool
	Validation2FoFc  bool
	ValidationFoFc   bool
	StructureFactors bool
	Map              bool
}

// FilesAvailable checks, via HEAD requests, which optional files exist for
// an entry. A non-200 response means "not available", never an error.
func (c *Client) FilesAvailable(ctx context.Context, ident string) (*AvailableFiles, error) {
	// Checked up front so the validation URL builders below cannot fail.
	if len(ident) < 3 {
		return nil, bioapis.LocalIO(fmt.Errorf("PDB ID %q must be at least 3 characters", ident))
	}

	var avail AvailableFiles

	url, _ := c.validationCifGzURL(ident)
	exists, err := c.Head(ctx, url)
	if err != nil {
		return nil, err
	}
	avail.Validation = exists

	url, _ = c.validation2FoFcCifGzURL(ident)
	if exists, err = c.Head(ctx, url); err != nil {
		return nil, err
	}
	avail.Validation2FoFc = exists

	url, _ = c.validationFoFcCifGzURL(ident)
	if exists, err = c.Head(ctx, url); err != nil {
		return nil, err
	}
	avail.ValidationFoFc = exists

	if exists, err = c.Head(ctx, c.structureFactorsCifURL(ident)); err != nil {
		return nil, err
	}
	avail.StructureFactors = exists

	// No EMDB cross-reference means no map file, not a failure.
	if mapURL, err := c.MapGzURL(ctx, ident); err == nil {
		if exists, err = c.Head(ctx, mapURL); err != nil {
			return nil, err
		}
		avail.Map = exists
	}

	return &avail, nil
}
