package render

import (
	"encoding/json"
	"testing"

	"lattice/internal/search"
)

func conds(keys ...string) map[string]json.RawMessage {
	m := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		m[k] = json.RawMessage(`{}`)
	}
	return m
}

func TestConditionLines_KeyDrivenSelection(t *testing.T) {
	c := search.Company{
		IsCapitalImpaired: true,
		CEOGender:         "F",
		HasExit:           false,
		SourcingChannel:   "demo-day",
	}

	lines := conditionLines(conds("capital_impairment", "ceo_gender"), c)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != [2]string{"자본상태", "자본잠식"} {
		t.Errorf("capital line = %v", lines[0])
	}
	if lines[1] != [2]string{"대표 성별", "여성"} {
		t.Errorf("gender line = %v", lines[1])
	}
}

func TestConditionLines_StableOrder(t *testing.T) {
	c := search.Company{HasExit: true, SourcingChannel: "referral"}
	lines := conditionLines(conds("sourcing_channel", "has_exit", "capital_impairment"), c)

	want := [][2]string{
		{"자본상태", "정상"},
		{"엑싯 여부", "예"},
		{"소싱 채널", "referral"},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %v, want %v", i, lines[i], want[i])
		}
	}
}

func TestConditionLines_UnknownKeysIgnored(t *testing.T) {
	lines := conditionLines(conds("region", "industry"), search.Company{})
	if lines != nil {
		t.Errorf("unknown condition keys produced lines: %v", lines)
	}
	if got := conditionLines(nil, search.Company{}); got != nil {
		t.Errorf("nil conditions produced lines: %v", got)
	}
}

func TestGenderLabel(t *testing.T) {
	tests := map[string]string{"F": "여성", "M": "남성", "": "-", "X": "-"}
	for in, want := range tests {
		if got := genderLabel(in); got != want {
			t.Errorf("genderLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConditionLines_ExitAndChannelValues(t *testing.T) {
	noExit := conditionLines(conds("has_exit"), search.Company{})
	if noExit[0][1] != "아니오" {
		t.Errorf("has_exit false rendered %q, want 아니오", noExit[0][1])
	}
	noChannel := conditionLines(conds("sourcing_channel"), search.Company{})
	if noChannel[0][1] != "-" {
		t.Errorf("absent channel rendered %q, want -", noChannel[0][1])
	}
}

func TestConditionKeys_Sorted(t *testing.T) {
	keys := conditionKeys(conds("region", "capital_impairment", "industry"))
	want := []string{"capital_impairment", "industry", "region"}
	if len(keys) != len(want) {
		t.Fatalf("got %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
