package render

import (
	"encoding/json"
	"sort"

	"lattice/internal/search"
)

// conditionField binds a backend matched-condition key to the extra line
// it unlocks on a company section. The table is ordered: lines appear in
// this sequence regardless of map iteration order.
type conditionField struct {
	key   string
	label string
	value func(search.Company) string
}

var conditionFields = []conditionField{
	{
		key:   "capital_impairment",
		label: "자본상태",
		value: func(c search.Company) string {
			if c.IsCapitalImpaired {
				return "자본잠식"
			}
			return "정상"
		},
	},
	{
		key:   "ceo_gender",
		label: "대표 성별",
		value: func(c search.Company) string { return genderLabel(c.CEOGender) },
	},
	{
		key:   "has_exit",
		label: "엑싯 여부",
		value: func(c search.Company) string {
			if c.HasExit {
				return "예"
			}
			return "아니오"
		},
	},
	{
		key:   "sourcing_channel",
		label: "소싱 채널",
		value: func(c search.Company) string { return orDash(c.SourcingChannel) },
	},
}

func genderLabel(g string) string {
	switch g {
	case "F":
		return "여성"
	case "M":
		return "남성"
	default:
		return "-"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// conditionLines returns the label/value pairs unlocked by the matched
// conditions, in table order. Condition presence is tested on the key set;
// the condition values themselves are backend-internal and ignored.
func conditionLines(conds map[string]json.RawMessage, c search.Company) [][2]string {
	if len(conds) == 0 {
		return nil
	}
	var lines [][2]string
	for _, f := range conditionFields {
		if _, ok := conds[f.key]; ok {
			lines = append(lines, [2]string{f.label, f.value(c)})
		}
	}
	return lines
}

// conditionKeys returns the matched-condition keys sorted for a stable
// caption.
func conditionKeys(conds map[string]json.RawMessage) []string {
	if len(conds) == 0 {
		return nil
	}
	keys := make([]string, 0, len(conds))
	for k := range conds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
