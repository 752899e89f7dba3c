// Command bioapis provides a CLI over the bio-apis service clients:
// PubChem, RCSB PDB, DrugBank, LIPID MAPS, PDBe, and the Amber GeoStd
// mirror.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	bioapis "github.com/David-OConnor/bio-apis"
	"github.com/David-OConnor/bio-apis/internal/output"
)

var (
	flagJSON    bool
	flagHuman   bool
	flagOut     string
	flagTimeout time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bioapis",
	Short: "Fetch molecular and structural data from public chemistry APIs",
	Long: `A command-line interface for fetching molecular and structural data
(SDF, mmCIF, FRCMOD, maps, search results, metadata) from PubChem, RCSB PDB,
DrugBank, LIPID MAPS, PDBe, and the Amber GeoStd mirror.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as structured JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagHuman, "human", "H", false, "Rich colorful terminal output")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "Write downloaded file content to this path")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", bioapis.DefaultTimeout, "HTTP request timeout")

	rootCmd.AddCommand(pdbCmd)
	rootCmd.AddCommand(sdfCmd)
	rootCmd.AddCommand(pubchemCmd)
	rootCmd.AddCommand(geostdCmd)
	rootCmd.AddCommand(openCmd)
}

func outputCfg() output.Config {
	return output.Config{
		JSON:  flagJSON,
		Human: flagHuman,
	}
}

func newBaseClient() *bioapis.Client {
	return bioapis.NewClient(bioapis.WithTimeout(flagTimeout))
}

// writeContent writes downloaded file text either to --out or stdout.
func writeContent(content []byte) error {
	if flagOut != "" {
		return os.WriteFile(flagOut, content, 0o644)
	}
	_, err := os.Stdout.Write(content)
	return err
}
