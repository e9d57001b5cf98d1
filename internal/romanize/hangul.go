package romanize

import "strings"

// Revised Romanization of Korean, the academic transcription rule.
// A precomposed syllable decomposes as
// 0xAC00 + (lead*21 + vowel)*28 + tail.
var (
	hangulLeads = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s",
		"ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	hangulVowels = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa",
		"wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i",
	}
	hangulTails = []string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs", "s",
		"ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

const (
	hangulBase = 0xAC00
	hangulLast = 0xD7A3
)

// Hangul romanizes Korean text syllable by syllable.
// Non-Hangul runes pass through unchanged.
func Hangul(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r < hangulBase || r > hangulLast {
			b.WriteRune(r)
			continue
		}
		idx := int(r - hangulBase)
		lead := idx / (21 * 28)
		vowel := (idx / 28) % 21
		tail := idx % 28
		b.WriteString(hangulLeads[lead])
		b.WriteString(hangulVowels[vowel])
		b.WriteString(hangulTails[tail])
	}
	return b.String()
}
