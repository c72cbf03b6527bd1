package venue

import "testing"

func TestIsMajorVenue(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name  string
		venue string
		want  bool
	}{
		{"nikon salon exact", "ニコンサロン", true},
		{"nikon salon with space", "ニコン サロン", true},
		{"nikon salon romanized", "Nikon Salon", true},
		{"fujifilm square misspelled", "フジフィルムスクエア", true},
		{"fujifilm square full-width space", "フジフイルム　スクエア", true},
		{"canon anywhere in name", "キヤノンオープンギャラリー品川", true},
		{"canon misspelled small ya", "キャノンギャラリー銀座", true},
		{"canon romanized", "Canon Gallery S", true},
		{"top museum english", "Tokyo Photographic Art Museum", true},
		{"venue name longer than alias", "富士フイルムフォトサロン東京スペース1", true},
		{"partial official name", "ニコンプラザ東京 THE GALLERY", true},
		{"independent gallery", "ギャラリー青空", false},
		{"citizen gallery", "市民ギャラリー", false},
		{"empty venue", "", false},
		{"whitespace only", " 　 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.IsMajorVenue(tt.venue)
			if got != tt.want {
				t.Errorf("IsMajorVenue(%q) = %v, want %v", tt.venue, got, tt.want)
			}
		})
	}
}

// The alias list holds partial official names, so containment must work
// both ways: input containing an alias, and an alias containing the
// input.
func TestIsMajorVenue_SymmetricContainment(t *testing.T) {
	table := DefaultTable()

	// Input contains the alias
	if !table.IsMajorVenue("エプサイト（epSITE）2F") {
		t.Error("venue containing alias did not match")
	}
	// Alias contains the input
	if !table.IsMajorVenue("リコーイメージングスクエア") {
		t.Error("venue contained in alias did not match")
	}
}

func TestIsMajorExhibition(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name        string
		title, host string
		want        bool
	}{
		{"tokyo camera club title", "第10回東京カメラ部写真展", "", true},
		{"tokyo camera club host", "写真展「光」", "東京カメラ部", true},
		{"romanized host", "10th Exhibition", "tokyocameraclub", true},
		{"world press photo", "世界報道写真展2025", "", true},
		{"plain solo show", "個展「春のキャンバス」", "山田花子", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.IsMajorExhibition(tt.title, tt.host)
			if got != tt.want {
				t.Errorf("IsMajorExhibition(%q, %q) = %v, want %v", tt.title, tt.host, got, tt.want)
			}
		})
	}
}

// A major program title makes the whole event major even at an
// independent venue.
func TestClassify_TitleOverridesVenue(t *testing.T) {
	table := DefaultTable()

	if table.IsMajorVenue("市民ギャラリー") {
		t.Fatal("expected 市民ギャラリー to be independent")
	}
	if got := table.Classify("市民ギャラリー", "第10回東京カメラ部写展", ""); got != TypeMajor {
		t.Errorf("Classify = %v, want %v", got, TypeMajor)
	}
}

func TestClassify_Independent(t *testing.T) {
	table := DefaultTable()

	if got := table.Classify("アートスペース新宿", "グループ展「都市の記憶」", "現代美術協会"); got != TypeIndependent {
		t.Errorf("Classify = %v, want %v", got, TypeIndependent)
	}
	// Malformed input degrades to independent, never errors
	if got := table.Classify("", "", ""); got != TypeIndependent {
		t.Errorf("Classify on empty input = %v, want %v", got, TypeIndependent)
	}
}

func TestInspect(t *testing.T) {
	table := DefaultTable()

	report := table.Inspect("市民ギャラリー", "第10回東京カメラ部写展", "")
	if report.MajorVenue {
		t.Error("MajorVenue = true, want false")
	}
	if !report.MajorExhibition {
		t.Error("MajorExhibition = false, want true")
	}
	if report.VenueType != TypeMajor {
		t.Errorf("VenueType = %v, want %v", report.VenueType, TypeMajor)
	}
	if report.NormalizedVenue != Normalize("市民ギャラリー") {
		t.Errorf("NormalizedVenue = %q", report.NormalizedVenue)
	}
}

func TestExtend(t *testing.T) {
	base := DefaultTable()
	extended := base.Extend(
		[][]string{{"シグマギャラリー", "sigma gallery"}},
		[][]string{{"ご当地フォトフェス"}},
	)

	if base.IsMajorVenue("シグマギャラリー") {
		t.Error("Extend mutated the base table")
	}
	if !extended.IsMajorVenue("シグマ ギャラリー") {
		t.Error("extended table did not match new venue cluster")
	}
	if !extended.IsMajorExhibition("ご当地フォトフェス2026", "") {
		t.Error("extended table did not match new exhibition cluster")
	}
	if !extended.IsMajorVenue("ニコンサロン") {
		t.Error("extended table lost a built-in cluster")
	}
}

func TestNewTable_DropsEmptyAliases(t *testing.T) {
	// An alias that normalizes to empty would match every venue.
	table := NewTable([][]string{{" 　 ", "ギャラリーx"}}, nil)

	if table.IsMajorVenue("まったく無関係の会場") {
		t.Error("empty alias leaked into the table and matched everything")
	}
	if !table.IsMajorVenue("ギャラリーX") {
		t.Error("surviving alias in the same cluster did not match")
	}
}

func TestParseType(t *testing.T) {
	for _, tok := range []string{"all", "major", "independent"} {
		if _, ok := ParseType(tok); !ok {
			t.Errorf("ParseType(%q) ok = false, want true", tok)
		}
	}
	for _, tok := range []string{"", "Major", "corporate", "indie"} {
		if _, ok := ParseType(tok); ok {
			t.Errorf("ParseType(%q) ok = true, want false", tok)
		}
	}
}
