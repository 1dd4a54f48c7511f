package fontheight

import "testing"

func TestLanguageMatcher(t *testing.T) {
	tests := []struct {
		name   string
		filter []string
		lang   string
		want   bool
	}{
		{"no_filter_matches_all", nil, "hi", true},
		{"exact", []string{"hi"}, "hi", true},
		{"region_variant", []string{"en"}, "en-US", true},
		{"no_match", []string{"en", "ru"}, "th", false},
		{"invalid_candidate", []string{"en"}, "!!", false},
		{"invalid_filter_ignored", []string{"not a tag"}, "anything", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLanguageMatcher(tt.filter)
			if got := m.matches(tt.lang); got != tt.want {
				t.Errorf("matches(%q) with filter %v = %v, want %v", tt.lang, tt.filter, got, tt.want)
			}
		})
	}
}
