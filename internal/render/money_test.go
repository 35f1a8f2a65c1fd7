package render

import "testing"

func amount(n int64) *int64 { return &n }

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name string
		in   *int64
		want string
	}{
		{"nil renders dash", nil, "-"},
		{"hundred-million bucket rounds", amount(250_000_000), "3억원"},
		{"hundred-million bucket exact", amount(100_000_000), "1억원"},
		{"hundred-million with separators", amount(1_234_560_000_000), "12,346억원"},
		{"ten-thousand bucket", amount(50_000), "5만원"},
		{"ten-thousand bucket rounds", amount(15_500), "2만원"},
		{"ten-thousand upper edge stays in bucket", amount(99_999_999), "10,000만원"},
		{"base unit", amount(999), "999원"},
		{"base unit with separators", amount(9_999), "9,999원"},
		{"zero", amount(0), "0원"},
		{"negative hundred-million", amount(-250_000_000), "-3억원"},
		{"negative base unit", amount(-999), "-999원"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.in); got != tt.want {
				t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{999, "999"},
		{1000, "1,000"},
		{123456789, "123,456,789"},
		{-1000, "-1,000"},
		{-999, "-999"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
