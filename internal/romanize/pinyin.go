package romanize

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// pinyinArgs converts hanzi to toneless pinyin. Rare hanzi without a
// reading fall back to the rune itself.
var pinyinArgs = func() gopinyin.Args {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Normal
	args.Fallback = func(r rune, a gopinyin.Args) []string {
		return []string{string(r)}
	}
	return args
}()

// Pinyin romanizes Chinese text as space-separated toneless syllables.
// Runs of non-hanzi runes (Latin words, digits, punctuation) are spliced
// in whole rather than exploded character by character.
func Pinyin(text string) string {
	var parts []string
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			parts = append(parts, run.String())
			run.Reset()
		}
	}

	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			flush()
			parts = append(parts, gopinyin.LazyPinyin(string(r), pinyinArgs)...)
			continue
		}
		run.WriteRune(r)
	}
	flush()

	return strings.TrimSpace(strings.Join(parts, " "))
}
