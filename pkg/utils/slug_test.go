package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Science of Sleep", "the-science-of-sleep"},
		{"  Anxiety: What Helps?  ", "anxiety-what-helps"},
		{"Already-Hyphenated --- Title", "already-hyphenated-title"},
		{"Breathing & Rest!!", "breathing-rest"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
