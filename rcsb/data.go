package rcsb

import (
	"context"
	"encoding/json"
	"fmt"

	bioapis "github.com/David-OConnor/bio-apis"
)

// StructInfo is the `struct` block of a data API entry.
type StructInfo struct {
	Title string `json:"title"`
}

// Database2 cross-references an entry into another database, e.g. EMDB.
type Database2 struct {
	DatabaseCode string `json:"database_code"`
	DatabaseID   string `json:"database_id"`
}

// Cell holds unit cell dimensions.
type Cell struct {
	AngleAlpha float64 `json:"angle_alpha"`
	AngleBeta  float64 `json:"angle_beta"`
	AngleGamma float64 `json:"angle_gamma"`
	LengthA    float64 `json:"length_a"`
	LengthB    float64 `json:"length_b"`
	LengthC    float64 `json:"length_c"`
	ZPDB       int     `json:"zpdb"`
}

// Citation is a publication associated with an entry. Page and volume
// fields are kept as strings: the API serves ints, strings of ints, and
// non-numeric strings for them depending on the journal.
type Citation struct {
	Country             string   `json:"country,omitempty"`
	ID                  string   `json:"id"`
	JournalAbbrev       string   `json:"journal_abbrev"`
	JournalIDASTM       string   `json:"journal_id_astm,omitempty"`
	JournalIDCSD        string   `json:"journal_id_csd,omitempty"`
	JournalIDISSN       string   `json:"journal_id_issn,omitempty"`
	JournalVolume       string   `json:"journal_volume,omitempty"`
	PageFirst           string   `json:"page_first,omitempty"`
	PageLast            string   `json:"page_last,omitempty"`
	PubMedID            int      `json:"pdbx_database_id_pub_med,omitempty"`
	Authors             []string `json:"rcsb_authors,omitempty"`
	IsPrimary           string   `json:"rcsb_is_primary"`
	RCSBJournalAbbrev   string   `json:"rcsb_journal_abbrev"`
	Title               string   `json:"title,omitempty"`
	Year                int      `json:"year,omitempty"`
}

// DatabaseStatus is the `pdbx_database_status` block.
type DatabaseStatus struct {
	DepositSite                string `json:"deposit_site,omitempty"`
	PDBFormatCompatible        string `json:"pdb_format_compatible"`
	ProcessSite                string `json:"process_site"`
	RecvdInitialDepositionDate string `json:"recvd_initial_deposition_date"`
	StatusCode                 string `json:"status_code"`
	StatusCodeSF               string `json:"status_code_sf,omitempty"`
	SGEntry                    string `json:"sgentry,omitempty"`
}

// EntryInfo is the `rcsb_entry_info` block of counts and aggregates.
type EntryInfo struct {
	AssemblyCount                          int      `json:"assembly_count"`
	BranchedEntityCount                    int      `json:"branched_entity_count"`
	CisPeptideCount                        int      `json:"cis_peptide_count"`
	DepositedAtomCount                     int      `json:"deposited_atom_count"`
	DepositedDeuteratedWaterCount          int      `json:"deposited_deuterated_water_count"`
	DepositedHydrogenAtomCount             int      `json:"deposited_hydrogen_atom_count"`
	DepositedModelCount                    int      `json:"deposited_model_count"`
	DepositedModeledPolymerMonomerCount    int      `json:"deposited_modeled_polymer_monomer_count"`
	DepositedNonpolymerEntityInstanceCount int      `json:"deposited_nonpolymer_entity_instance_count"`
	DepositedPolymerEntityInstanceCount    int      `json:"deposited_polymer_entity_instance_count"`
	DepositedPolymerMonomerCount           int      `json:"deposited_polymer_monomer_count"`
	DepositedSolventAtomCount              int      `json:"deposited_solvent_atom_count"`
	DepositedUnmodeledPolymerMonomerCount  int      `json:"deposited_unmodeled_polymer_monomer_count"`
	DiffrnRadiationWavelengthMaximum       *float64 `json:"diffrn_radiation_wavelength_maximum,omitempty"`
	DiffrnRadiationWavelengthMinimum       *float64 `json:"diffrn_radiation_wavelength_minimum,omitempty"`
	DisulfideBondCount                     int      `json:"disulfide_bond_count"`
	EntityCount                            int      `json:"entity_count"`
	ExperimentalMethod                     string   `json:"experimental_method"`
	ExperimentalMethodCount                int      `json:"experimental_method_count"`
	InterMolCovalentBondCount              int      `json:"inter_mol_covalent_bond_count"`
	InterMolMetalicBondCount               int      `json:"inter_mol_metalic_bond_count"`
	MolecularWeight                        float64  `json:"molecular_weight"`
	NaPolymerEntityTypes                   string   `json:"na_polymer_entity_types"`
	NonpolymerEntityCount                  int      `json:"nonpolymer_entity_count"`
	NonpolymerMolecularWeightMaximum       *float64 `json:"nonpolymer_molecular_weight_maximum,omitempty"`
	NonpolymerMolecularWeightMinimum       *float64 `json:"nonpolymer_molecular_weight_minimum,omitempty"`
	PolymerComposition                     string   `json:"polymer_composition"`
	PolymerEntityCount                     int      `json:"polymer_entity_count"`
	PolymerEntityCountDNA                  int      `json:"polymer_entity_count_DNA"`
	PolymerEntityCountRNA                  int      `json:"polymer_entity_count_RNA"`
	PolymerEntityCountNucleicAcid          int      `json:"polymer_entity_count_nucleic_acid"`
	PolymerEntityCountNucleicAcidHybrid    int      `json:"polymer_entity_count_nucleic_acid_hybrid"`
	PolymerEntityCountProtein              int      `json:"polymer_entity_count_protein"`
	PolymerEntityTaxonomyCount             int      `json:"polymer_entity_taxonomy_count"`
	PolymerMolecularWeightMaximum          float64  `json:"polymer_molecular_weight_maximum"`
	PolymerMolecularWeightMinimum          float64  `json:"polymer_molecular_weight_minimum"`
	PolymerMonomerCountMaximum             int      `json:"polymer_monomer_count_maximum"`
	PolymerMonomerCountMinimum             int      `json:"polymer_monomer_count_minimum"`
}

// EntryData is the top-level record served by the data API for one entry.
type EntryData struct {
	Struct             StructInfo     `json:"struct"`
	Database2          []Database2    `json:"database2"`
	Cell               *Cell          `json:"cell,omitempty"`
	Citation           []Citation     `json:"citation"`
	PdbxDatabaseStatus DatabaseStatus `json:"pdbx_database_status"`
	EntryInfo          EntryInfo      `json:"rcsb_entry_info"`
}

// Metadata is the subset of entry data used for display.
type Metadata struct {
	Title                string
	PrimaryCitationTitle string
}

type metadataResponse struct {
	Struct              StructInfo `json:"struct"`
	RCSBPrimaryCitation struct {
		Title string `json:"title"`
	} `json:"rcsb_primary_citation"`
}

func (c *Client) entryURL(ident string) string {
	return c.DataURL + "/" + ident
}

// Metadata fetches the entry and primary citation titles for a PDB ID.
// This works with 4-letter (legacy) and 12-letter IDs.
func (c *Client) Metadata(ctx context.Context, ident string) (*Metadata, error) {
	body, err := c.Get(ctx, c.entryURL(ident))
	if err != nil {
		return nil, fmt.Errorf("metadata for %s: %w", ident, err)
	}

	var resp metadataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, bioapis.Decode(fmt.Errorf("parsing metadata for %s: %w", ident, err))
	}

	return &Metadata{
		Title:                resp.Struct.Title,
		PrimaryCitationTitle: resp.RCSBPrimaryCitation.Title,
	}, nil
}

// AllData fetches the full data API record for a PDB ID.
func (c *Client) AllData(ctx context.Context, ident string) (*EntryData, error) {
	body, err := c.Get(ctx, c.entryURL(ident))
	if err != nil {
		return nil, fmt.Errorf("entry data for %s: %w", ident, err)
	}

	var data EntryData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, bioapis.Decode(fmt.Errorf("parsing entry data for %s: %w", ident, err))
	}
	return &data, nil
}
