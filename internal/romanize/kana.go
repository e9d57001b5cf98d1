package romanize

import "strings"

// kanaTable maps hiragana (katakana is folded onto it) to Hepburn romaji.
var kanaTable = map[string]string{
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"か": "ka", "き": "ki", "く": "ku", "け": "ke", "こ": "ko",
	"さ": "sa", "し": "shi", "す": "su", "せ": "se", "そ": "so",
	"た": "ta", "ち": "chi", "つ": "tsu", "て": "te", "と": "to",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ひ": "hi", "ふ": "fu", "へ": "he", "ほ": "ho",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "ゐ": "wi", "ゑ": "we", "を": "o", "ん": "n",
	"が": "ga", "ぎ": "gi", "ぐ": "gu", "げ": "ge", "ご": "go",
	"ざ": "za", "じ": "ji", "ず": "zu", "ぜ": "ze", "ぞ": "zo",
	"だ": "da", "ぢ": "ji", "づ": "zu", "で": "de", "ど": "do",
	"ば": "ba", "び": "bi", "ぶ": "bu", "べ": "be", "ぼ": "bo",
	"ぱ": "pa", "ぴ": "pi", "ぷ": "pu", "ぺ": "pe", "ぽ": "po",
	"ぁ": "a", "ぃ": "i", "ぅ": "u", "ぇ": "e", "ぉ": "o",
	"ゔ": "vu",

	// Digraphs
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"ぢゃ": "ja", "ぢゅ": "ju", "ぢょ": "jo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
}

// Kana romanizes Japanese kana to Hepburn romaji. Kanji and anything else
// without a kana reading pass through unchanged, which matches the
// backend's graceful fallback when no morphological analyzer is present.
func Kana(text string) string {
	runes := []rune(foldKatakana(text))
	var b strings.Builder
	var last rune

	write := func(s string) {
		b.WriteString(s)
		for _, r := range s {
			last = r
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		// Sokuon doubles the next syllable's first consonant.
		if r == 'っ' {
			next := ""
			if i+1 < len(runes) {
				next = lookupKana(runes, i+1)
			}
			if next != "" {
				if strings.HasPrefix(next, "ch") {
					write("t")
				} else {
					write(next[:1])
				}
			}
			continue
		}

		// Prolonged sound mark repeats the previous vowel. After a rune
		// that passed through unromanized there is no vowel to repeat,
		// so the mark is dropped.
		if r == 'ー' {
			if isRomajiVowel(last) {
				write(string(last))
			}
			continue
		}

		// Digraph first (kana + small ya/yu/yo).
		if i+1 < len(runes) {
			if repl, ok := kanaTable[string(runes[i:i+2])]; ok {
				write(repl)
				i++
				continue
			}
		}

		if repl, ok := kanaTable[string(r)]; ok {
			write(repl)
			continue
		}
		b.WriteRune(r)
		last = r
	}

	return b.String()
}

func isRomajiVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// lookupKana returns the romaji for the syllable starting at index i.
func lookupKana(runes []rune, i int) string {
	if i+1 < len(runes) {
		if repl, ok := kanaTable[string(runes[i:i+2])]; ok {
			return repl
		}
	}
	if repl, ok := kanaTable[string(runes[i])]; ok {
		return repl
	}
	return ""
}

// foldKatakana shifts katakana onto the hiragana block so one table serves
// both syllabaries. The prolonged sound mark is kept.
func foldKatakana(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= 0x30A1 && r <= 0x30F6 {
			r -= 0x60
		}
		b.WriteRune(r)
	}
	return b.String()
}
