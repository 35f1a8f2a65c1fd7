package render

import (
	"fmt"
	"strings"

	"lattice/internal/search"
	"lattice/internal/ui"
)

// lineItem pairs a backend line-item key with its statement label.
type lineItem struct {
	key   string
	label string
}

// The three detail tables have fixed shapes and fixed row orders; absent
// line items still get a row with a "-" amount.
var (
	incomeStatementItems = []lineItem{
		{"revenue", "매출액"},
		{"cost_of_sales", "매출원가"},
		{"gross_profit", "매출총이익"},
		{"sg_and_a", "판매비와관리비"},
		{"operating_profit", "영업이익"},
		{"non_operating_income", "영업외수익"},
		{"non_operating_expenses", "영업외비용"},
		{"profit_before_tax", "법인세차감전순이익"},
		{"income_tax_expense", "법인세비용"},
		{"net_income", "당기순이익"},
	}

	balanceAssetItems = []lineItem{
		{"current_assets", "유동자산"},
		{"cash_and_equivalents", "현금및현금성자산"},
		{"trade_receivables", "매출채권"},
		{"inventories", "재고자산"},
		{"non_current_assets", "비유동자산"},
		{"tangible_assets", "유형자산"},
		{"intangible_assets", "무형자산"},
		{"investment_assets", "투자자산"},
		{"total_assets", "자산총계"},
	}

	balanceLiabilityEquityItems = []lineItem{
		{"current_liabilities", "유동부채"},
		{"trade_payables", "매입채무"},
		{"short_term_borrowings", "단기차입금"},
		{"non_current_liabilities", "비유동부채"},
		{"long_term_borrowings", "장기차입금"},
		{"total_liabilities", "부채총계"},
		{"capital_stock", "자본금"},
		{"capital_surplus", "자본잉여금"},
		{"retained_earnings", "이익잉여금"},
		{"total_equity", "자본총계"},
	}
)

// Financial renders a financial statement: the five headline metrics, a
// capital-impairment warning when flagged, and the full fixed-shape
// breakdown tables.
func Financial(env *search.Envelope, st ui.Styles) string {
	var sb strings.Builder

	name := "-"
	if env.Company != nil && env.Company.Name != "" {
		name = env.Company.Name
	}
	sb.WriteString(st.Title.Render("📑 재무제표 — " + name))
	sb.WriteString("\n")
	if env.Period != nil {
		sb.WriteString(st.Subtitle.Render(fmt.Sprintf("%d년 %d분기", env.Period.Year, env.Period.Quarter)))
		sb.WriteString("\n")
	}
	if date := dateOnly(env.Meta.UpdatedAt); date != "" {
		sb.WriteString(st.Muted.Render("기준일: " + date))
		sb.WriteString("\n")
	}
	if env.Meta.IsCapitalImpaired {
		sb.WriteString(st.Warning.Render("⚠ 자본잠식 상태"))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	headline := [][2]string{
		{"매출액", FormatAmount(env.Summary.Revenue)},
		{"영업이익", FormatAmount(env.Summary.OperatingProfit)},
		{"당기순이익", FormatAmount(env.Summary.NetIncome)},
		{"자산총계", FormatAmount(env.Summary.TotalAssets)},
		{"자본총계", FormatAmount(env.Summary.TotalEquity)},
	}
	for _, m := range headline {
		sb.WriteString(st.Bold.Render(m[0] + ": "))
		sb.WriteString(st.Body.Render(m[1]))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(st.Title.Render("상세 내역"))
	sb.WriteString("\n")
	sb.WriteString(detailTable("손익계산서", incomeStatementItems, env.Full).View(st))
	sb.WriteString(detailTable("재무상태표 — 자산", balanceAssetItems, env.Full).View(st))
	sb.WriteString(detailTable("재무상태표 — 부채·자본", balanceLiabilityEquityItems, env.Full).View(st))

	return sb.String()
}

func detailTable(title string, items []lineItem, full map[string]*int64) *ui.SimpleTable {
	tbl := ui.NewSimpleTable(title, "항목", "금액")
	for _, item := range items {
		tbl.AddRow(item.label, FormatAmount(full[item.key]))
	}
	return tbl
}

// dateOnly truncates an ISO timestamp to date granularity.
func dateOnly(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
