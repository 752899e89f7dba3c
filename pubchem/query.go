package pubchem

import (
	"context"
	"fmt"
	"strings"
)

// IdentifierSeparator joins identifier lists into a single URL path segment.
const IdentifierSeparator = ","

// Domain is a PUG-REST resource category.
// https://pubchem.ncbi.nlm.nih.gov/docs/pug-rest
type Domain int

const (
	DomainSubstance Domain = iota
	DomainCompound
	DomainAssay
	DomainGene
	DomainProtein
	DomainPathway
	DomainTaxonomy
	DomainCell
)

func (d Domain) String() string {
	switch d {
	case DomainSubstance:
		return "substance"
	case DomainCompound:
		return "compound"
	case DomainAssay:
		return "assay"
	case DomainGene:
		return "gene"
	case DomainProtein:
		return "protein"
	case DomainPathway:
		return "pathway"
	case DomainTaxonomy:
		return "taxonomy"
	case DomainCell:
		return "cell"
	}
	return "unknown"
}

// Namespace states how the identifier list should be interpreted. Namespaces
// are scoped per domain: pairing e.g. NamespaceSID with DomainCompound is a
// caller error that the builder does not check.
type Namespace int

const (
	NamespaceCID Namespace = iota
	NamespaceSID
	NamespaceAID
	NamespaceName
	NamespaceSMILES
	NamespaceInChI
	NamespaceInChIKey
	NamespaceFormula
	NamespaceSourceID
	NamespaceXRef

	// Structure-search namespaces, keyed on a compound ID.
	NamespaceFastIdentityCID
	NamespaceFastSimilarity2DCID
	NamespaceFastSimilarity3DCID
	NamespaceFastSubstructureCID
	NamespaceFastSuperstructureCID
)

func (n Namespace) String() string {
	switch n {
	case NamespaceCID:
		return "cid"
	case NamespaceSID:
		return "sid"
	case NamespaceAID:
		return "aid"
	case NamespaceName:
		return "name"
	case NamespaceSMILES:
		return "smiles"
	case NamespaceInChI:
		return "inchi"
	case NamespaceInChIKey:
		return "inchikey"
	case NamespaceFormula:
		return "formula"
	case NamespaceSourceID:
		return "sourceid"
	case NamespaceXRef:
		return "xref"
	case NamespaceFastIdentityCID:
		return "fastidentity/cid"
	case NamespaceFastSimilarity2DCID:
		return "fastsimilarity_2d/cid"
	case NamespaceFastSimilarity3DCID:
		return "fastsimilarity_3d/cid"
	case NamespaceFastSubstructureCID:
		return "fastsubstructure/cid"
	case NamespaceFastSuperstructureCID:
		return "fastsuperstructure/cid"
	}
	return "unknown"
}

type opKind int

const (
	opRecord opKind = iota
	opSynonyms
	opCIDs
	opSIDs
	opAIDs
	opDescription
	opConformers
	opClassification
	opProperty
	opXRefs
)

// Operation is the action requested for the identified records: the full
// record, a specific property list, synonyms, cross-references, and so on.
type Operation struct {
	kind opKind
	args []string
}

// OpRecord requests the full record.
func OpRecord() Operation { return Operation{kind: opRecord} }

// OpSynonyms requests the synonym list.
func OpSynonyms() Operation { return Operation{kind: opSynonyms} }

// OpCIDs requests matching compound IDs.
func OpCIDs() Operation { return Operation{kind: opCIDs} }

// OpSIDs requests matching substance IDs.
func OpSIDs() Operation { return Operation{kind: opSIDs} }

// OpAIDs requests matching assay IDs.
func OpAIDs() Operation { return Operation{kind: opAIDs} }

// OpDescription requests the record description.
func OpDescription() Operation { return Operation{kind: opDescription} }

// OpConformers requests conformer IDs.
func OpConformers() Operation { return Operation{kind: opConformers} }

// OpClassification requests the classification hierarchy.
func OpClassification() Operation { return Operation{kind: opClassification} }

// OpProperty requests the named properties, e.g. "MolecularWeight".
// https://pubchem.ncbi.nlm.nih.gov/docs/pug-rest#section=Compound-Property-Tables
func OpProperty(props ...string) Operation {
	return Operation{kind: opProperty, args: props}
}

// OpXRefs requests the named cross-reference types, e.g. "RegistryID".
func OpXRefs(xrefs ...string) Operation {
	return Operation{kind: opXRefs, args: xrefs}
}

func (op Operation) String() string {
	switch op.kind {
	case opRecord:
		return "record"
	case opSynonyms:
		return "synonyms"
	case opCIDs:
		return "cids"
	case opSIDs:
		return "sids"
	case opAIDs:
		return "aids"
	case opDescription:
		return "description"
	case opConformers:
		return "conformers"
	case opClassification:
		return "classification"
	case opProperty:
		return "property/" + strings.Join(op.args, IdentifierSeparator)
	case opXRefs:
		return "xrefs/" + strings.Join(op.args, IdentifierSeparator)
	}
	return "unknown"
}

// QueryURL renders the request URL for the given query parts against the
// client's PUG-REST base:
// {base}/{domain}/{namespace}/{joined identifiers}/{operation}/JSON.
//
// Identifiers are joined with IdentifierSeparator; no deduplication or
// validation is applied. An empty identifier list yields an empty path
// segment, left for the server to reject.
func (c *Client) QueryURL(domain Domain, ns Namespace, ids []string, op Operation) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s/JSON",
		c.BaseURL, domain, ns, strings.Join(ids, IdentifierSeparator), op)
}

// Query renders the request URL for the given query parts, issues a GET,
// and returns the raw response body. Any HTTP response, including a non-2xx
// status, yields the body; only transport failures error.
func (c *Client) Query(ctx context.Context, domain Domain, ns Namespace, ids []string, op Operation) (string, error) {
	return c.GetString(ctx, c.QueryURL(domain, ns, ids, op))
}
