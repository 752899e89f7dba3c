package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/David-OConnor/bio-apis/internal/output"
	"github.com/David-OConnor/bio-apis/rcsb"
)

var pdbCmd = &cobra.Command{
	Use:   "pdb",
	Short: "Query the RCSB PDB search and data APIs",
}

func init() {
	pdbCmd.AddCommand(pdbSearchCmd)
	pdbCmd.AddCommand(pdbNewCmd)
	pdbCmd.AddCommand(pdbMetaCmd)
	pdbCmd.AddCommand(pdbFilesCmd)
	pdbCmd.AddCommand(pdbCifCmd)
	pdbCmd.AddCommand(pdbValidationCmd)
	pdbCmd.AddCommand(pdbSfCmd)
	pdbCmd.AddCommand(pdbMapCmd)
}

func newRCSBClient() *rcsb.Client {
	return rcsb.NewClientWithBase(newBaseClient())
}

var pdbSearchCmd = &cobra.Command{
	Use:   "search <sequence>",
	Short: "Search PDB entries by amino acid sequence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := newRCSBClient().SearchBySequence(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return output.FormatPDBResults(os.Stdout, results, outputCfg())
	},
}

var pdbNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Pick a random PDB entry released in the past week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ident, err := newRCSBClient().NewlyReleased(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(ident)
		return nil
	},
}

var pdbMetaCmd = &cobra.Command{
	Use:   "meta <pdb-id>",
	Short: "Fetch entry and primary citation titles for a PDB ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := newRCSBClient().Metadata(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Title:    %s\n", meta.Title)
		fmt.Printf("Citation: %s\n", meta.PrimaryCitationTitle)
		return nil
	},
}

var pdbFilesCmd = &cobra.Command{
	Use:   "files <pdb-id>",
	Short: "Check which optional data files exist for a PDB ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		avail, err := newRCSBClient().FilesAvailable(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return output.FormatFilesAvailable(os.Stdout, args[0], avail, outputCfg())
	},
}

var pdbCifCmd = &cobra.Command{
	Use:   "cif <pdb-id>",
	Short: "Download the mmCIF structure file for a PDB ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cif, err := newRCSBClient().LoadCIF(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeContent([]byte(cif))
	},
}

var pdbValidationCmd = &cobra.Command{
	Use:   "validation <pdb-id>",
	Short: "Download the validation mmCIF file for a PDB ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cif, err := newRCSBClient().LoadValidationCIF(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeContent([]byte(cif))
	},
}

var pdbSfCmd = &cobra.Command{
	Use:   "sf <pdb-id>",
	Short: "Download the structure factors mmCIF file for a PDB ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cif, err := newRCSBClient().LoadStructureFactorsCIF(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeContent([]byte(cif))
	},
}

var pdbMapCmd = &cobra.Command{
	Use:   "map <pdb-id>",
	Short: "Download the EMDB electron density map for a PDB ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := newRCSBClient().LoadMap(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeContent(data)
	},
}
