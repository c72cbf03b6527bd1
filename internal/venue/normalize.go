package venue

import (
	"regexp"
	"strings"
	"unicode"
)

// spellingFixes corrects common brand-name misspellings before
// comparison. フイルム brands are routinely written with a small イ
// replaced by ィ, and キヤノン is officially spelled with a large ヤ.
var spellingFixes = strings.NewReplacer(
	"フジフィルム", "フジフイルム",
	"富士フィルム", "富士フイルム",
	"キャノン", "キヤノン",
)

// canonPattern folds the romanized brand name into its katakana form.
var canonPattern = regexp.MustCompile(`(?i)canon`)

// Normalize prepares venue/title/host text for alias comparison:
// every whitespace rune (including the full-width U+3000 space) is
// removed, known misspellings are corrected, and the result is
// lower-cased. The same function must be applied to both inputs and
// aliases; raw text is never compared against normalized text.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = spellingFixes.Replace(s)
	s = canonPattern.ReplaceAllString(s, "キヤノン")
	return strings.ToLower(s)
}
