package search

import "net/http"

// Variant is the render kind of a classified response.
type Variant int

const (
	// VariantError covers non-200 statuses and unrecognized payloads.
	VariantError Variant = iota
	// VariantAnalytics is an aggregate/analytics table.
	VariantAnalytics
	// VariantFinancial is a financial statement.
	VariantFinancial
	// VariantWeb is a web-search result list.
	VariantWeb
	// VariantStartupList is a non-empty company-search list.
	VariantStartupList
	// VariantEmpty is a company search that matched nothing.
	VariantEmpty
)

// String returns the wire-stable name of the variant (used in logs and
// stored alongside transcript turns).
func (v Variant) String() string {
	switch v {
	case VariantAnalytics:
		return "analytics"
	case VariantFinancial:
		return "financial"
	case VariantWeb:
		return "web"
	case VariantStartupList:
		return "startup_list"
	case VariantEmpty:
		return "empty"
	default:
		return "error"
	}
}

// Classify maps an HTTP status and decoded payload to exactly one render
// variant. Total and pure: every input resolves to a variant, and the
// first-match decision order below is the de-facto protocol contract with
// the backend, so it must not be reordered.
//
//  1. non-200 status        -> Error
//  2. type == "analytics"   -> Analytics
//  3. type == "financial"   -> Financial
//  4. type == "web"         -> Web
//  5. results key present   -> StartupList when non-empty, else Empty
//  6. anything else         -> Error
//
// The backend is not versioned in lockstep with this client; unknown
// shapes degrade to Error instead of crashing the render dispatcher.
func Classify(status int, env *Envelope) Variant {
	if status != http.StatusOK {
		return VariantError
	}
	if env == nil {
		return VariantError
	}
	switch env.Type {
	case "analytics":
		return VariantAnalytics
	case "financial":
		return VariantFinancial
	case "web":
		return VariantWeb
	}
	if env.HasResults() {
		if env.ResultCount() > 0 {
			return VariantStartupList
		}
		return VariantEmpty
	}
	return VariantError
}
