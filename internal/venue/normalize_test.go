package venue

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "ascii whitespace stripped",
			input: "fujifilm square",
			want:  "fujifilmsquare",
		},
		{
			name:  "full-width space stripped",
			input: "フジフイルム　スクエア",
			want:  "フジフイルムスクエア",
		},
		{
			name:  "half-width space stripped",
			input: "フジフイルム スクエア",
			want:  "フジフイルムスクエア",
		},
		{
			name:  "katakana misspelling corrected",
			input: "フジフィルムスクエア",
			want:  "フジフイルムスクエア",
		},
		{
			name:  "kanji brand misspelling corrected",
			input: "富士フィルムフォトサロン",
			want:  "富士フイルムフォトサロン",
		},
		{
			name:  "canon small ya corrected",
			input: "キャノンギャラリー銀座",
			want:  "キヤノンギャラリー銀座",
		},
		{
			name:  "romanized canon folded",
			input: "Canon Gallery",
			want:  "キヤノンgallery",
		},
		{
			name:  "uppercase CANON folded",
			input: "CANON OPEN GALLERY",
			want:  "キヤノンopengallery",
		},
		{
			name:  "lowercased",
			input: "OM SYSTEM GALLERY",
			want:  "omsystemgallery",
		},
		{
			name:  "tabs and newlines stripped",
			input: "ニコン\tサロン\n",
			want:  "ニコンサロン",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: " 　\t ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Normalization must be stable: texts differing only in whitespace
// normalize identically.
func TestNormalize_WhitespaceStable(t *testing.T) {
	variants := []string{
		"ニコンサロン",
		"ニコン サロン",
		"ニコン　サロン",
		" ニコンサロン ",
	}
	want := Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", v, got, want)
		}
	}
}
