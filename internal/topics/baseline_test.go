package topics

import "testing"

func TestValidateBaseline(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  bool
	}{
		{"simple topic", "cache/a/wis2", true},
		{"full topic", "cache/a/wis2/ca-eccc-msc/data/core", true},
		{"wildcard plus", "cache/a/+", true},
		{"trailing hash", "cache/a/#", true},
		{"dotted topic", "invalid.topic.hierarchy", false},
		{"uppercase segment", "ORIGIN/a/wis2", false},
		{"uppercase single char", "cache/A/wis2", false},
		{"non-ascii", "origin/a/wis2/ca-\xc3\xa9", false},
		{"hash mid-topic", "cache/a/#/weather", false},
		{"hash mid-segment", "cache/a#b", false},
		{"control character", "cache/a/\x07", false},
		{"empty string", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateBaseline(tc.topic); got != tc.want {
				t.Errorf("ValidateBaseline(%q) = %v, want %v", tc.topic, got, tc.want)
			}
		})
	}
}
