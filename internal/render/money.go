// Package render turns classified response envelopes into styled text.
// Renderers are pure functions of (envelope, styles): no network calls, no
// shared state, which is what makes transcript replay safe.
package render

import (
	"math"
	"strconv"
	"strings"
)

// Magnitude buckets of the Korean currency convention.
const (
	eok = 100_000_000 // 억원
	man = 10_000      // 만원
)

// FormatAmount renders an integer currency amount in the domain convention:
// nil is "-", amounts of at least one 억 (1e8 won) render in 억원, amounts
// of at least one 만 (1e4 won) in 만원, and the rest in raw 원. Each bucket
// rounds to the nearest whole unit and groups thousands.
func FormatAmount(v *int64) string {
	if v == nil {
		return "-"
	}
	n := *v
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= eok:
		return groupThousands(int64(math.Round(float64(n)/eok))) + "억원"
	case abs >= man:
		return groupThousands(int64(math.Round(float64(n)/man))) + "만원"
	default:
		return groupThousands(n) + "원"
	}
}

// groupThousands formats n with comma separators.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	sb.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
