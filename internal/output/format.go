// Package output provides formatting for the bioapis CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/David-OConnor/bio-apis/geostd"
	"github.com/David-OConnor/bio-apis/rcsb"
)

// Config controls which output mode is active.
type Config struct {
	JSON  bool // structured JSON
	Human bool // rich terminal output with color
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatPDBResults writes sequence search results.
func FormatPDBResults(w io.Writer, results []rcsb.PdbData, cfg Config) error {
	if cfg.JSON {
		return writeJSON(w, pdbResultsJSON(results))
	}
	if cfg.Human {
		return formatPDBResultsHuman(w, results)
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\n", r.RCSBID, r.Title)
	}
	return nil
}

type pdbResultJSON struct {
	RCSBID string `json:"rcsb_id"`
	Title  string `json:"title"`
}

func pdbResultsJSON(results []rcsb.PdbData) []pdbResultJSON {
	out := make([]pdbResultJSON, 0, len(results))
	for _, r := range results {
		out = append(out, pdbResultJSON{RCSBID: r.RCSBID, Title: r.Title})
	}
	return out
}

// FormatFilesAvailable writes the optional-file availability report.
func FormatFilesAvailable(w io.Writer, ident string, avail *rcsb.AvailableFiles, cfg Config) error {
	if cfg.JSON {
		return writeJSON(w, map[string]any{
			"rcsb_id":           ident,
			"validation":        avail.Validation,
			"validation_2fo_fc": avail.Validation2FoFc,
			"validation_fo_fc":  avail.ValidationFoFc,
			"structure_factors": avail.StructureFactors,
			"map":               avail.Map,
		})
	}
	if cfg.Human {
		return formatFilesAvailableHuman(w, ident, avail)
	}
	fmt.Fprintf(w, "%s: validation=%t validation_2fo_fc=%t validation_fo_fc=%t structure_factors=%t map=%t\n",
		ident, avail.Validation, avail.Validation2FoFc, avail.ValidationFoFc,
		avail.StructureFactors, avail.Map)
	return nil
}

// FormatGeostdItems writes GeoStd catalog entries.
func FormatGeostdItems(w io.Writer, items []geostd.Item, cfg Config) error {
	if cfg.JSON {
		return writeJSON(w, items)
	}
	if cfg.Human {
		return formatGeostdItemsHuman(w, items)
	}
	for _, it := range items {
		fmt.Fprintf(w, "%s\tfrcmod=%t\tlib=%t\n", it.Ident, it.FrcmodAvail, it.LibAvail)
	}
	return nil
}

// FormatGeostdData writes a molecule's parameter-file payload as JSON.
func FormatGeostdData(w io.Writer, data *geostd.Data) error {
	return writeJSON(w, data)
}

// FormatCIDs writes a list of PubChem compound IDs.
func FormatCIDs(w io.Writer, cids []uint32, cfg Config) error {
	if cfg.JSON {
		return writeJSON(w, cids)
	}
	if cfg.Human {
		return formatCIDsHuman(w, cids)
	}
	for _, cid := range cids {
		fmt.Fprintln(w, cid)
	}
	return nil
}
