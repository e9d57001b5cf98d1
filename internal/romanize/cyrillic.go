package romanize

import "unicode"

// cyrillicTable is the reversed Russian transliteration table.
var cyrillicTable = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "'",
	'э': "e", 'ю': "yu", 'я': "ya",
	// Serbian extras
	'ђ': "dj", 'ј': "j", 'љ': "lj", 'њ': "nj", 'ћ': "c", 'џ': "dz",
}

// greekTable is the reversed Greek transliteration table.
var greekTable = map[rune]string{
	'α': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e",
	'ζ': "z", 'η': "i", 'θ': "th", 'ι': "i", 'κ': "k",
	'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x", 'ο': "o",
	'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t",
	'υ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps", 'ω': "o",
	'ά': "a", 'έ': "e", 'ή': "i", 'ί': "i", 'ό': "o",
	'ύ': "y", 'ώ': "o", 'ϊ': "i", 'ϋ': "y",
}

// Cyrillic transliterates Russian (and Serbian) text to Latin script.
func Cyrillic(text string) string {
	return mapRunesCased(text, cyrillicTable)
}

// Greek transliterates Greek text to Latin script.
func Greek(text string) string {
	return mapRunesCased(text, greekTable)
}

// mapRunesCased is mapRunes with upper-case handling: tables hold lowercase
// entries and capitalized source runes produce capitalized output.
func mapRunesCased(text string, table map[rune]string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		lower := unicode.ToLower(r)
		repl, ok := table[lower]
		if !ok {
			out = append(out, r)
			continue
		}
		if r != lower && repl != "" {
			out = append(out, unicode.ToUpper(rune(repl[0])))
			out = append(out, []rune(repl[1:])...)
			continue
		}
		out = append(out, []rune(repl)...)
	}
	return string(out)
}
