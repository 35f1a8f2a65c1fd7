package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"lattice/internal/search"
	"lattice/internal/ui"
)

// Result dispatches a classified response to its renderer. Passing the
// stored variant (instead of re-classifying) keeps transcript replay
// byte-identical to the original render.
func Result(v search.Variant, env *search.Envelope, st ui.Styles) string {
	switch v {
	case search.VariantAnalytics:
		return Analytics(env, st)
	case search.VariantFinancial:
		return Financial(env, st)
	case search.VariantWeb:
		return Web(env, st)
	case search.VariantStartupList:
		return StartupList(env, st)
	case search.VariantEmpty:
		return Empty(env, st)
	default:
		return Error(env, st)
	}
}

// StartupList renders a non-empty company-search result: a count header,
// route-type and condition captions, then one section per company.
func StartupList(env *search.Envelope, st ui.Styles) string {
	var sb strings.Builder

	sb.WriteString(st.Title.Render(fmt.Sprintf("🏢 검색 결과 (%d건)", env.Total())))
	sb.WriteString("\n")
	sb.WriteString(st.Muted.Render("검색 타입: " + orDash(env.Meta.RouteType)))
	sb.WriteString("\n")
	if keys := conditionKeys(env.Meta.MatchedConditions); keys != nil {
		sb.WriteString(st.Muted.Render("적용 조건: " + strings.Join(keys, ", ")))
		sb.WriteString("\n")
	}
	if env.Meta.ReferenceCompany != "" {
		sb.WriteString(st.Muted.Render("참조 기업: " + env.Meta.ReferenceCompany))
		sb.WriteString("\n")
	}

	for _, c := range env.Companies() {
		sb.WriteString("\n")
		sb.WriteString(companySection(c, env.Meta.MatchedConditions, st))
	}
	return sb.String()
}

// companySection renders one company: badged title, the fixed four-field
// summary, condition-driven dynamic fields, then free-form extras.
func companySection(c search.Company, conds map[string]json.RawMessage, st ui.Styles) string {
	var sb strings.Builder

	title := st.Bold.Render(fmt.Sprintf("▸ %s — %s", orDash(c.Name), orDash(c.Industry)))
	sb.WriteString(title)
	if c.IsCapitalImpaired {
		sb.WriteString(" " + st.Warning.Render("[자본잠식]"))
	}
	if c.HasExit {
		sb.WriteString(" " + st.Success.Render("[엑싯]"))
	}
	sb.WriteString("\n")

	region := orDash(c.Region)
	if c.City != "" {
		region += " / " + c.City
	}
	sb.WriteString(st.Body.Render(fmt.Sprintf("  대표: %s │ 지역: %s │ 라운드: %s │ 단계: %s",
		orDash(c.CEOName), region, orDash(c.Round), orDash(c.Stage))))
	sb.WriteString("\n")

	for _, line := range conditionLines(conds, c) {
		sb.WriteString(st.Body.Render(fmt.Sprintf("  %s: %s", line[0], line[1])))
		sb.WriteString("\n")
	}

	if c.Summary != "" {
		sb.WriteString(st.Muted.Render("  " + c.Summary))
		sb.WriteString("\n")
	}
	if c.Technologies != "" {
		sb.WriteString(st.Body.Render("  기술: " + c.Technologies))
		sb.WriteString("\n")
	}
	if c.PreMoneyValuation != nil {
		sb.WriteString(st.Body.Render("  Pre-money: " + FormatAmount(c.PreMoneyValuation)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Analytics renders an aggregate result: description, a row table (or an
// empty-state notice) and optional clarification options.
func Analytics(env *search.Envelope, st ui.Styles) string {
	var sb strings.Builder

	sb.WriteString(st.Title.Render("📊 통계 결과"))
	sb.WriteString("\n")
	if env.Meta.Description != "" {
		sb.WriteString(st.Muted.Render(env.Meta.Description))
		sb.WriteString("\n")
	}

	if len(env.Data) > 0 {
		sb.WriteString(analyticsTable(env.Data).View(st))
	} else {
		sb.WriteString(st.Info.Render("집계 결과가 없습니다."))
		sb.WriteString("\n")
	}

	if len(env.ClarificationOptions) > 0 {
		sb.WriteString(st.Bold.Render("선택지: "))
		sb.WriteString(st.Body.Render(strings.Join(env.ClarificationOptions, ", ")))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Web renders a web-search result as numbered title/link/snippet entries
// followed by a consolidated numbered source list (the citation convention
// the backend's answers refer to).
func Web(env *search.Envelope, st ui.Styles) string {
	var sb strings.Builder

	header := "🌐 웹 검색 결과"
	if q := env.Meta.Query; q != "" {
		header += fmt.Sprintf(" (%s)", q)
	}
	sb.WriteString(st.Title.Render(header))
	sb.WriteString("\n")

	results := env.WebResults()
	if len(results) == 0 {
		sb.WriteString(st.Info.Render("웹 검색 결과가 없습니다."))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, r := range results {
		sb.WriteString(st.Bold.Render(fmt.Sprintf("%d. %s", i+1, r.Title)))
		sb.WriteString("\n")
		if r.Link != "" {
			sb.WriteString(st.Info.Render("   " + r.Link))
			sb.WriteString("\n")
		}
		if r.Snippet != "" {
			sb.WriteString(st.Body.Render("   " + r.Snippet))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(st.Muted.Render("출처:"))
	sb.WriteString("\n")
	for i, r := range results {
		sb.WriteString(st.Muted.Render(fmt.Sprintf("  [%d] %s", i+1, r.Link)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Error renders a backend error: its message when present, a fixed
// fallback otherwise.
func Error(env *search.Envelope, st ui.Styles) string {
	msg := env.ErrorMessage()
	if msg == "" {
		msg = "알 수 없는 오류"
	}
	return st.Error.Render("오류: "+msg) + "\n"
}

// Empty renders a company search that matched nothing, with the backend's
// query suggestions when supplied.
func Empty(env *search.Envelope, st ui.Styles) string {
	var sb strings.Builder
	sb.WriteString(st.Warning.Render("검색 결과가 없습니다."))
	sb.WriteString("\n")
	if env != nil && len(env.Suggestions) > 0 {
		sb.WriteString(st.Bold.Render("추천 검색어: "))
		sb.WriteString(st.Body.Render(strings.Join(env.Suggestions, ", ")))
		sb.WriteString("\n")
	}
	return sb.String()
}
