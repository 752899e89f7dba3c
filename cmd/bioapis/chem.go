package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/David-OConnor/bio-apis/drugbank"
	"github.com/David-OConnor/bio-apis/geostd"
	"github.com/David-OConnor/bio-apis/internal/output"
	"github.com/David-OConnor/bio-apis/lmsd"
	"github.com/David-OConnor/bio-apis/pdbe"
	"github.com/David-OConnor/bio-apis/pubchem"
	"github.com/David-OConnor/bio-apis/rcsb"
)

func newPubChemClient() *pubchem.Client {
	return pubchem.NewClientWithBase(newBaseClient())
}

// loadSDF dispatches an SDF download to the named service.
func loadSDF(cmd *cobra.Command, service, ident string) (string, error) {
	base := newBaseClient()
	ctx := cmd.Context()

	switch strings.ToLower(service) {
	case "pubchem":
		return pubchem.NewClientWithBase(base).LoadSDF(ctx, ident)
	case "drugbank":
		return drugbank.NewClientWithBase(base).LoadSDF(ctx, ident)
	case "lmsd", "lipidmaps":
		return lmsd.NewClientWithBase(base).LoadSDF(ctx, ident)
	case "pdbe":
		return pdbe.NewClientWithBase(base).LoadSDF(ctx, ident)
	}
	return "", fmt.Errorf("unknown SDF service %q (want pubchem, drugbank, lmsd, or pdbe)", service)
}

var sdfCmd = &cobra.Command{
	Use:   "sdf <service> <ident>",
	Short: "Download an SDF file from pubchem, drugbank, lmsd, or pdbe",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdf, err := loadSDF(cmd, args[0], args[1])
		if err != nil {
			return err
		}
		return writeContent([]byte(sdf))
	},
}

var pubchemCmd = &cobra.Command{
	Use:   "pubchem",
	Short: "Query the PubChem PUG-REST API",
}

func init() {
	pubchemCmd.AddCommand(pubchemSimilarCmd)
	pubchemCmd.AddCommand(pubchemCIDsCmd)

	geostdCmd.AddCommand(geostdListCmd)
	geostdCmd.AddCommand(geostdFindCmd)
	geostdCmd.AddCommand(geostdLoadCmd)
}

var pubchemSimilarCmd = &cobra.Command{
	Use:   "similar <cid>",
	Short: "Find compounds similar in 3D structure to a CID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cid, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid CID %q: %w", args[0], err)
		}
		cids, err := newPubChemClient().SimilarCIDs(cmd.Context(), uint32(cid))
		if err != nil {
			return err
		}
		return output.FormatCIDs(os.Stdout, cids, outputCfg())
	},
}

var pubchemCIDsCmd = &cobra.Command{
	Use:   "cids <name>",
	Short: "Look up compound IDs by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cids, err := newPubChemClient().CIDsForName(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return output.FormatCIDs(os.Stdout, cids, outputCfg())
	},
}

var geostdCmd = &cobra.Command{
	Use:   "geostd",
	Short: "Query the Amber GeoStd mirror",
}

func newGeostdClient() *geostd.Client {
	return geostd.NewClientWithBase(newBaseClient())
}

var geostdListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all molecules in the GeoStd collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := newGeostdClient().AllMols(cmd.Context())
		if err != nil {
			return err
		}
		return output.FormatGeostdItems(os.Stdout, items, outputCfg())
	},
}

var geostdFindCmd = &cobra.Command{
	Use:   "find <text>",
	Short: "Search GeoStd molecules by keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := newGeostdClient().FindMols(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return output.FormatGeostdItems(os.Stdout, items, outputCfg())
	},
}

var geostdLoadCmd = &cobra.Command{
	Use:   "load <ident>",
	Short: "Download mol2/FRCMOD/lib files for a molecule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := newGeostdClient().LoadMolFiles(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return output.FormatGeostdData(os.Stdout, data)
		}
		fmt.Print(data.Mol2)
		if data.Frcmod != nil {
			fmt.Print(*data.Frcmod)
		}
		if data.Lib != nil {
			fmt.Print(*data.Lib)
		}
		return nil
	},
}

// openBrowser dispatches a browser-overview open to the named service.
func openBrowser(service, id string) error {
	switch strings.ToLower(service) {
	case "pubchem":
		cid, err := strconv.ParseUint(id, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid CID %q: %w", id, err)
		}
		return pubchem.OpenOverview(uint32(cid))
	case "rcsb", "pdb":
		return rcsb.OpenOverview(id)
	case "rcsb-3d":
		return rcsb.Open3DView(id)
	case "rcsb-structure":
		return rcsb.OpenStructure(id)
	case "drugbank":
		return drugbank.OpenOverview(id)
	case "lmsd", "lipidmaps":
		return lmsd.OpenOverview(id)
	case "pdbe":
		return pdbe.OpenOverview(id)
	}
	return fmt.Errorf("unknown service %q", service)
}

var openCmd = &cobra.Command{
	Use:   "open <service> <id>",
	Short: "Open a record's overview page in the default web browser",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return openBrowser(args[0], args[1])
	},
}
