package venue

// Curated alias clusters for major corporate galleries and museums.
// Each cluster is a set of text variants (romanizations, katakana
// forms, partial names) referring to the same real-world venue.
// Matching is symmetric substring containment after normalization, so
// partial official names still match.
//
// New clusters should favor multi-token distinctive phrases: a short
// single-token alias matches every venue name containing it.
var defaultVenueClusters = [][]string{
	// Sony α plazas and galleries
	{"αプラザ札幌", "アルファプラザ札幌", "α plaza 札幌"},
	{"αプラザ名古屋", "アルファプラザ名古屋", "α plaza 名古屋"},
	{"αプラザ大阪", "アルファプラザ大阪", "α plaza 大阪"},
	{"αプラザ福岡天神", "アルファプラザ福岡天神", "α plaza 福岡"},
	{"ソニーイメージングギャラリー銀座", "sony imaging gallery"},

	// Fujifilm salons and plazas
	{"富士フイルムフォトサロン", "富士フィルムフォトサロン", "フジフイルムフォトサロン", "fujifilm photo salon"},
	{"富士フィルムフォトサロン名古屋", "富士フイルムフォトサロン名古屋", "フジフイルムフォトサロン名古屋"},
	{"富士フィルムフォトサロン大阪", "富士フイルムフォトサロン大阪", "フジフイルムフォトサロン大阪"},
	{"フジフイルムスクエア", "フジフィルムスクエア", "フジフイルム スクエア", "fujifilm square"},
	{"富士フォトギャラリー銀座", "富士フィルムフォトギャラリー銀座"},
	{"FUJIFILM Imaging Plaza東京", "fujifilm imaging plaza 東京", "フジフイルムイメージングプラザ東京"},
	{"FUJIFILM Imaging Plaza大阪", "fujifilm imaging plaza 大阪", "フジフイルムイメージングプラザ大阪"},

	// Canon: the single token is deliberately broad. Every venue name
	// containing キヤノン is a corporate gallery in practice, and the
	// normalized brand name has no false-positive risk.
	{"キヤノン"},

	// Nikon salons and plazas
	{"ニコンサロン", "nikon salon"},
	{"ニコンプラザ東京", "nikon plaza 東京"},
	{"ニコンプラザ大阪", "nikon plaza 大阪"},

	// Epson
	{"エプソンスクエア丸の内", "epson square 丸の内"},
	{"エプサイト", "epsite"},

	// Ricoh
	{"リコーイメージングスクエア東京", "ricoh imaging square 東京"},
	{"リコーイメージングスクエア大阪", "ricoh imaging square 大阪"},

	// OM SYSTEM
	{"OM SYSTEM GALLERY", "om system gallery", "omシステムギャラリー"},

	// Other corporate galleries
	{"ケンコートキナーギャラリー", "kenko tokina gallery"},
	{"ピクトリコショップ＆ギャラリー", "pictrico shop gallery", "ピクトリコギャラリー"},
	{"ライカギャラリー", "leica gallery", "ライカギャラリー東京", "ライカストア東京"},
	{"GR SPACE TOKYO", "gr space tokyo", "grスペース東京", "grスペーストーキョー"},

	// Museums and photography institutions
	{"東京都写真美術館", "東京都立写真美術館", "tokyo photographic art museum", "top museum"},
	{"JCIIフォトサロン", "jcii photo salon", "jciiフォトサロン"},
}

// Alias clusters for large recurring exhibition programs, matched
// against the concatenated title + host text.
var defaultExhibitionClusters = [][]string{
	{"東京カメラ部", "tokyocameraclub", "Tokyo Camera Club"},
	{"CP+", "cameraandphoto imaging show", "シーピープラス"},
	{"写真の日", "フォトの日"},
	{"世界報道写真展", "world press photo"},
}
