// Package search talks to the Lattice search backend: it sends one query
// per call, normalizes transport failures into a typed error, and decodes
// the loosely-typed response envelope far enough to classify it.
//
// The backend owns the envelope shape; this package only consumes it. Every
// field is optional and every accessor has a defined default, so rendering
// never fails on a missing field.
package search

import "encoding/json"

// Envelope is the top-level response payload. Fields that drive
// classification are decoded eagerly; the polymorphic results list stays
// raw until a renderer asks for its concrete shape.
type Envelope struct {
	Type                 string           `json:"type"`
	Results              json.RawMessage  `json:"results"`
	Meta                 Meta             `json:"meta"`
	Data                 []map[string]any `json:"data"`
	ClarificationOptions []string         `json:"clarification_options"`
	Suggestions          []string         `json:"suggestions"`
	Error                *ErrorBody       `json:"error"`

	// Financial-statement payloads carry these at the top level.
	Company *CompanyRef       `json:"company"`
	Period  *Period           `json:"period"`
	Summary FinancialSummary  `json:"summary"`
	Full    map[string]*int64 `json:"full"`
}

// Meta carries the opportunistically-read response metadata.
type Meta struct {
	Total             *int                       `json:"total"`
	RouteType         string                     `json:"route_type"`
	MatchedConditions map[string]json.RawMessage `json:"matched_conditions"`
	ReferenceCompany  string                     `json:"reference_company"`
	Description       string                     `json:"description"`
	Query             string                     `json:"query"`
	IsCapitalImpaired bool                       `json:"is_capital_impaired"`
	UpdatedAt         string                     `json:"updated_at"`
}

// ErrorBody is the backend error envelope.
type ErrorBody struct {
	Message string `json:"message"`
}

// Company is one startup record in a company-search result. Ephemeral:
// decoded per render, never persisted beyond the raw payload.
type Company struct {
	Name              string `json:"name"`
	Industry          string `json:"industry"`
	Region            string `json:"region"`
	City              string `json:"city"`
	CEOName           string `json:"ceo_name"`
	CEOGender         string `json:"ceo_gender"`
	Round             string `json:"round"`
	Stage             string `json:"stage"`
	InvestmentDate    string `json:"investment_date"`
	Summary           string `json:"summary"`
	Technologies      string `json:"technologies"`
	PreMoneyValuation *int64 `json:"pre_money_valuation"`
	IsCapitalImpaired bool   `json:"is_capital_impaired"`
	HasExit           bool   `json:"has_exit"`
	SourcingChannel   string `json:"sourcing_channel"`
}

// WebResult is one entry of a web-search result list.
type WebResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// CompanyRef identifies the company of a financial statement.
type CompanyRef struct {
	Name string `json:"name"`
}

// Period is the reporting period of a financial statement.
type Period struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

// FinancialSummary holds the five headline metrics. Pointers distinguish
// zero from absent; absent renders as "-".
type FinancialSummary struct {
	Revenue         *int64 `json:"revenue"`
	OperatingProfit *int64 `json:"operating_profit"`
	NetIncome       *int64 `json:"net_income"`
	TotalAssets     *int64 `json:"total_assets"`
	TotalEquity     *int64 `json:"total_equity"`
}

// ParseEnvelope decodes a raw response body. A body that is not a JSON
// object yields an error; callers treat that as an unrecognized payload.
func ParseEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// HasResults reports whether the payload carried a results key, including
// an explicit empty list. A JSON null is indistinguishable from absence
// after decoding and is treated as absent.
func (e *Envelope) HasResults() bool {
	return len(e.Results) > 0 && string(e.Results) != "null"
}

// ResultCount returns the number of entries in the results list without
// committing to their shape.
func (e *Envelope) ResultCount() int {
	if !e.HasResults() {
		return 0
	}
	var items []json.RawMessage
	if err := json.Unmarshal(e.Results, &items); err != nil {
		return 0
	}
	return len(items)
}

// Companies decodes the results list as startup records. Undecodable
// entries come back zero-valued rather than failing the render.
func (e *Envelope) Companies() []Company {
	if !e.HasResults() {
		return nil
	}
	var companies []Company
	if err := json.Unmarshal(e.Results, &companies); err != nil {
		return nil
	}
	return companies
}

// WebResults decodes the results list as web-search entries.
func (e *Envelope) WebResults() []WebResult {
	if !e.HasResults() {
		return nil
	}
	var results []WebResult
	if err := json.Unmarshal(e.Results, &results); err != nil {
		return nil
	}
	return results
}

// Total returns meta.total when present, else the result count.
func (e *Envelope) Total() int {
	if e.Meta.Total != nil {
		return *e.Meta.Total
	}
	return e.ResultCount()
}

// ErrorMessage returns the backend error message, or empty when absent.
func (e *Envelope) ErrorMessage() string {
	if e == nil || e.Error == nil {
		return ""
	}
	return e.Error.Message
}
