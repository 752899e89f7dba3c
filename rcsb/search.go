// Package rcsb queries the RCSB PDB search and data APIs, and downloads
// structure, validation, structure-factor, and map files.
//
// Search API: https://search.rcsb.org/#search-api
// Data API: https://data.rcsb.org/#data-api
package rcsb

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	bioapis "github.com/David-OConnor/bio-apis"
)

const (
	// DefaultSearchURL is the RCSB search API endpoint.
	DefaultSearchURL = "https://search.rcsb.org/rcsbsearch/v2/query"
	// DefaultDataURL is the RCSB data API entry endpoint.
	DefaultDataURL = "https://data.rcsb.org/rest/v1/core/entry"
	// DefaultFileBaseURL is the base for structure/validation/map files.
	DefaultFileBaseURL = "https://files.rcsb.org"

	// MaxResults caps search result sets, both to limit follow-up queries
	// to the data API and to simplify display code.
	MaxResults = 8
)

// Client queries the RCSB PDB APIs.
type Client struct {
	*bioapis.Client
	SearchURL   string
	DataURL     string
	FileBaseURL string
}

// NewClient creates an RCSB client.
func NewClient(opts ...bioapis.Option) *Client {
	return NewClientWithBase(bioapis.NewClient(opts...))
}

// NewClientWithBase creates an RCSB client from an existing shared client.
func NewClientWithBase(base *bioapis.Client) *Client {
	return &Client{
		Client:      base,
		SearchURL:   DefaultSearchURL,
		DataURL:     DefaultDataURL,
		FileBaseURL: DefaultFileBaseURL,
	}
}

// Operator is a search comparison operator.
// https://search.rcsb.org/#building-queries
type Operator int

const (
	OperatorExactMatch Operator = iota
	OperatorExists
	OperatorGreater
	OperatorLess
	OperatorGreaterOrEqual
	OperatorLessOrEqual
	OperatorEquals
	OperatorContainsPhrase
	OperatorContainsWords
	OperatorRange
	OperatorIn
)

func (o Operator) String() string {
	switch o {
	case OperatorExactMatch:
		return "exact_match"
	case OperatorExists:
		return "exists"
	case OperatorGreater:
		return "greater"
	case OperatorLess:
		return "less"
	case OperatorGreaterOrEqual:
		return "greater_or_equal"
	case OperatorLessOrEqual:
		return "less_or_equal"
	case OperatorEquals:
		return "equals"
	case OperatorContainsPhrase:
		return "contains_phrase"
	case OperatorContainsWords:
		return "contains_words"
	case OperatorRange:
		return "range"
	case OperatorIn:
		return "in"
	}
	return "unknown"
}

// MarshalJSON renders the operator as its API literal.
func (o Operator) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// ReturnType selects what kind of identifiers a search returns.
// https://search.rcsb.org/#return-type
type ReturnType int

const (
	ReturnEntry ReturnType = iota
	ReturnAssembly
	ReturnPolymerEntity
	ReturnNonPolymerEntity
	ReturnPolymerInstance
	ReturnMolDefinition
)

func (r ReturnType) String() string {
	switch r {
	case ReturnEntry:
		return "entry"
	case ReturnAssembly:
		return "assembly"
	case ReturnPolymerEntity:
		return "polymer_entity"
	case ReturnNonPolymerEntity:
		return "non_polymer_entity"
	case ReturnPolymerInstance:
		return "polymer_instance"
	case ReturnMolDefinition:
		return "mol_definition"
	}
	return "unknown"
}

// MarshalJSON renders the return type as its API literal.
func (r ReturnType) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// QueryKind is the node kind of a search query: a terminal clause or a
// boolean group.
type QueryKind int

const (
	QueryTerminal QueryKind = iota
	QueryGroup
)

func (q QueryKind) String() string {
	switch q {
	case QueryTerminal:
		return "terminal"
	case QueryGroup:
		return "group"
	}
	return "unknown"
}

// MarshalJSON renders the query kind as its API literal.
func (q QueryKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// Service selects the search service a query runs against.
type Service int

const (
	ServiceText Service = iota
	ServiceFullText
	ServiceTextChem
	ServiceStructure
	ServiceStrucMotif
	ServiceSequence
	ServiceSeqMotif
	ServiceChemical
)

func (s Service) String() string {
	switch s {
	case ServiceText:
		return "text"
	case ServiceFullText:
		return "full_text"
	case ServiceTextChem:
		return "text_chem"
	case ServiceStructure:
		return "structure"
	case ServiceStrucMotif:
		return "strucmotif"
	case ServiceSequence:
		return "sequence"
	case ServiceSeqMotif:
		return "seqmotif"
	case ServiceChemical:
		return "chemical"
	}
	return "unknown"
}

// MarshalJSON renders the service as its API literal.
func (s Service) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// SearchParams are the parameters of a terminal search clause.
// https://search.rcsb.org/structure-search-attributes.html
type SearchParams struct {
	Value          string    `json:"value,omitempty"`
	SequenceType   string    `json:"sequence_type,omitempty"`
	EvalueCutoff   int       `json:"evalue_cutoff,omitempty"`
	IdentityCutoff float64   `json:"identity_cutoff,omitempty"`
	Operator       *Operator `json:"operator,omitempty"`
	Attribute      string    `json:"attribute,omitempty"`
	Pattern        string    `json:"pattern,omitempty"`
}

// SearchQuery is a single query node.
type SearchQuery struct {
	Kind       QueryKind    `json:"type"`
	Service    Service      `json:"service"`
	Parameters SearchParams `json:"parameters"`
}

// Sort orders search results.
type Sort struct {
	SortBy     string  `json:"sort_by"`
	Direction  string  `json:"direction"`
	RandomSeed *uint32 `json:"random_seed,omitempty"`
}

// RequestOptions tune scoring and ordering of a search.
type RequestOptions struct {
	ScoringStrategy string `json:"scoring_strategy,omitempty"`
	Sort            []Sort `json:"sort,omitempty"`
}

// SearchPayload is the JSON body POSTed to the search API.
type SearchPayload struct {
	ReturnType     ReturnType      `json:"return_type"`
	Query          SearchQuery     `json:"query"`
	RequestOptions *RequestOptions `json:"request_options,omitempty"`
}

// SearchResult is one entry of a search result set.
type SearchResult struct {
	Identifier string  `json:"identifier"`
	Score      float64 `json:"score"`
}

type searchResponse struct {
	QueryID    string         `json:"query_id"`
	ResultType string         `json:"result_type"`
	TotalCount int            `json:"total_count"`
	ResultSet  []SearchResult `json:"result_set"`
}

// PdbData pairs a PDB ID with its entry title.
type PdbData struct {
	RCSBID string
	Title  string
}

// Search POSTs a search payload and returns the raw result set, in
// response order.
func (c *Client) Search(ctx context.Context, payload *SearchPayload) ([]SearchResult, error) {
	body, err := c.PostJSON(ctx, c.SearchURL, payload)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, bioapis.Decode(fmt.Errorf("parsing search response: %w", err))
	}
	return resp.ResultSet, nil
}

// SearchBySequence finds PDB entries matching a one-letter amino acid
// sequence, returning at most MaxResults entries with their titles.
//
// The title of each hit requires a follow-up data API request; these run
// sequentially, and any single failure aborts the whole operation.
func (c *Client) SearchBySequence(ctx context.Context, seq string) ([]PdbData, error) {
	payload := &SearchPayload{
		ReturnType: ReturnEntry,
		Query: SearchQuery{
			Kind:    QueryTerminal,
			Service: ServiceSequence,
			Parameters: SearchParams{
				Value:          seq,
				SequenceType:   "protein",
				EvalueCutoff:   1,
				IdentityCutoff: 0.9,
			},
		},
		RequestOptions: &RequestOptions{ScoringStrategy: "sequence"},
	}

	results, err := c.Search(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	out := make([]PdbData, 0, len(results))
	for _, r := range results {
		data, err := c.Metadata(ctx, r.Identifier)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", r.Identifier, err)
		}
		out = append(out, PdbData{RCSBID: r.Identifier, Title: data.Title})
	}
	return out, nil
}

// NewlyReleased returns a semi-random PDB ID released within the past week.
// https://search.rcsb.org/#search-example-12
func (c *Client) NewlyReleased(ctx context.Context) (string, error) {
	op := OperatorGreater
	payload := &SearchPayload{
		ReturnType: ReturnEntry,
		Query: SearchQuery{
			Kind:    QueryTerminal,
			Service: ServiceText,
			Parameters: SearchParams{
				Attribute: "rcsb_accession_info.initial_release_date",
				Operator:  &op,
				Value:     "now-1w",
			},
		},
	}

	results, err := c.Search(ctx, payload)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no structures released in the past week")
	}

	return results[rand.Intn(len(results))].Identifier, nil
}
