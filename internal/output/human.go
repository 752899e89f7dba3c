package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/David-OConnor/bio-apis/geostd"
	"github.com/David-OConnor/bio-apis/rcsb"
)

// --- Styles ---

var (
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bold  = lipgloss.NewStyle().Bold(true)
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dim   = lipgloss.NewStyle().Faint(true)
)

// truncate cuts a string to maxLen characters, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, t.Render())
}

func yesNo(b bool) string {
	if b {
		return green.Render("yes")
	}
	return dim.Render("no")
}

func formatPDBResultsHuman(w io.Writer, results []rcsb.PdbData) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "🧬 No matching structures.")
		return nil
	}

	fmt.Fprintln(w, bold.Render(fmt.Sprintf("🧬 %d matching structures", len(results))))

	var rows [][]string
	for _, r := range results {
		rows = append(rows, []string{cyan.Render(r.RCSBID), truncate(r.Title, 60)})
	}
	renderTable(w, []string{"PDB ID", "Title"}, rows)
	return nil
}

func formatFilesAvailableHuman(w io.Writer, ident string, avail *rcsb.AvailableFiles) error {
	fmt.Fprintln(w, bold.Render("Files available for "+ident))

	rows := [][]string{
		{"Validation", yesNo(avail.Validation)},
		{"Validation 2Fo-Fc", yesNo(avail.Validation2FoFc)},
		{"Validation Fo-Fc", yesNo(avail.ValidationFoFc)},
		{"Structure factors", yesNo(avail.StructureFactors)},
		{"Map", yesNo(avail.Map)},
	}
	renderTable(w, []string{"File", "Available"}, rows)
	return nil
}

func formatGeostdItemsHuman(w io.Writer, items []geostd.Item) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No molecules found.")
		return nil
	}

	var rows [][]string
	for _, it := range items {
		rows = append(rows, []string{cyan.Render(it.Ident), yesNo(it.FrcmodAvail), yesNo(it.LibAvail)})
	}
	renderTable(w, []string{"Ident", "FRCMOD", "Lib"}, rows)
	return nil
}

func formatCIDsHuman(w io.Writer, cids []uint32) error {
	if len(cids) == 0 {
		fmt.Fprintln(w, "No compounds found.")
		return nil
	}

	var rows [][]string
	for i, cid := range cids {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), cyan.Render(fmt.Sprintf("%d", cid))})
	}
	renderTable(w, []string{"#", "CID"}, rows)
	return nil
}
