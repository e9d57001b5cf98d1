// Package romanize turns translated text into a readable Latin-script
// rendering, dispatched on the target language code.
//
// Coverage varies by script: Chinese goes through a real pinyin converter,
// Korean through the revised-romanization tables, kana through Hepburn
// rules, while the Indic and Perso-Arabic paths use word dictionaries with
// a character-map fallback. Latin-script targets pass through untouched.
package romanize

import (
	"strings"
	"unicode"
)

// Text romanizes text according to the target language code.
// Unknown codes and Latin-script languages return the text unchanged.
func Text(text, langCode string) string {
	if text == "" {
		return text
	}

	lc := strings.ToLower(langCode)

	switch {
	case strings.HasPrefix(lc, "ja") || lc == "japanese":
		return Kana(text)
	case strings.HasPrefix(lc, "zh") || lc == "chinese":
		return Pinyin(text)
	case strings.HasPrefix(lc, "ko") || lc == "korean":
		return Hangul(text)
	case lc == "ur" || lc == "urdu":
		return Urdu(text)
	case lc == "hi" || lc == "hindi":
		return Devanagari(text)
	case lc == "ar" || lc == "arabic" || lc == "fa" || lc == "persian" || lc == "farsi":
		return ArabicScript(text)
	case lc == "ru" || lc == "sr" || lc == "cyrillic" || lc == "russian":
		return Cyrillic(text)
	case lc == "el" || lc == "greek":
		return Greek(text)
	}

	return text
}

// mapRunes replaces each rune via the table, passing unknown runes through.
func mapRunes(text string, table map[rune]string) string {
	var b strings.Builder
	for _, r := range text {
		if repl, ok := table[r]; ok {
			b.WriteString(repl)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// mapWords romanizes word by word: exact dictionary hits win, punctuation is
// preserved around the core, and anything else falls back to the rune table.
func mapWords(text string, words map[string]string, chars map[rune]string) string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))

	for _, w := range fields {
		if repl, ok := words[w]; ok {
			out = append(out, repl)
			continue
		}

		prefix, core, suffix := splitPunct(w)
		if core == "" {
			out = append(out, prefix+suffix)
			continue
		}
		if repl, ok := words[core]; ok {
			out = append(out, prefix+repl+suffix)
			continue
		}
		out = append(out, prefix+mapRunes(core, chars)+suffix)
	}

	return strings.Join(out, " ")
}

// splitPunct peels leading and trailing punctuation off a word.
func splitPunct(w string) (prefix, core, suffix string) {
	runes := []rune(w)
	start, end := 0, len(runes)
	for start < end && !isWordRune(runes[start]) {
		start++
	}
	for end > start && !isWordRune(runes[end-1]) {
		end--
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
