package rcsb

import (
	bioapis "github.com/David-OConnor/bio-apis"
)

const (
	// OverviewBaseURL is the base for human-readable structure pages.
	OverviewBaseURL = "https://www.rcsb.org/structure"
	// ThreeDViewBaseURL is the base for the interactive 3D viewer.
	ThreeDViewBaseURL = "https://www.rcsb.org/3d-view"
	// StructureFileViewURL is the base for viewing raw structure files.
	StructureFileViewURL = "https://files.rcsb.org/view"
)

// OpenOverview opens the RCSB structure page for a PDB ID in the default
// web browser. This works with 4-letter (legacy) and 12-letter IDs.
func OpenOverview(ident string) error {
	return bioapis.OpenInBrowser(OverviewBaseURL + "/" + ident)
}

// Open3DView opens the RCSB 3D viewer for a PDB ID.
func Open3DView(ident string) error {
	return bioapis.OpenInBrowser(ThreeDViewBaseURL + "/" + ident)
}

// OpenStructure opens the raw PDBx/mmCIF structure file for a PDB ID.
func OpenStructure(ident string) error {
	return bioapis.OpenInBrowser(StructureFileViewURL + "/" + ident + ".cif")
}
