package crisis

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCrisis  bool
		wantKeyword string
	}{
		{
			name:        "direct phrase",
			input:       "I want to die",
			wantCrisis:  true,
			wantKeyword: "want to die",
		},
		{
			name:       "benign query",
			input:      "I want pizza",
			wantCrisis: false,
		},
		{
			name:        "case insensitive",
			input:       "SUICIDE prevention resources",
			wantCrisis:  true,
			wantKeyword: "suicide",
		},
		{
			name:        "phrase embedded in sentence",
			input:       "sometimes i feel like there is no way out of this",
			wantCrisis:  true,
			wantKeyword: "no way out",
		},
		{
			name:       "empty input",
			input:      "",
			wantCrisis: false,
		},
		{
			name:       "whitespace only",
			input:      "   \t  ",
			wantCrisis: false,
		},
		{
			name:        "substring over-trigger is accepted",
			input:       "hopelessly tangled headphone cables",
			wantCrisis:  true,
			wantKeyword: "hopeless",
		},
		{
			name:        "apostrophe variant",
			input:       "i can't go on like this",
			wantCrisis:  true,
			wantKeyword: "can't go on",
		},
		{
			name:       "unrelated long text",
			input:      "the history of the printing press in renaissance europe",
			wantCrisis: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.input)
			if v.Crisis != tt.wantCrisis {
				t.Errorf("Classify(%q).Crisis = %v, want %v", tt.input, v.Crisis, tt.wantCrisis)
			}
			if tt.wantCrisis && v.Keyword != tt.wantKeyword {
				t.Errorf("Classify(%q).Keyword = %q, want %q", tt.input, v.Keyword, tt.wantKeyword)
			}
			if !tt.wantCrisis && v.Keyword != "" {
				t.Errorf("Classify(%q).Keyword = %q, want empty", tt.input, v.Keyword)
			}
		})
	}
}

func TestIsCrisis(t *testing.T) {
	if !IsCrisis("planning to kill myself") {
		t.Error("IsCrisis should report true for a crisis phrase")
	}
	if IsCrisis("planning a birthday party") {
		t.Error("IsCrisis should report false for a benign phrase")
	}
}
