// Package detect identifies the language of input text.
package detect

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// confidenceFloor below which short ASCII text is re-checked for English.
// Trigram classifiers misfire badly on short greetings.
const confidenceFloor = 0.90

// englishSignals are common words that mark ASCII text as English when the
// classifier is unsure.
var englishSignals = []string{"the ", " and ", " how ", " you", " is ", " are ", " hello", " hi "}

// Language classifies text and returns an ISO 639-1 code where one exists.
// Empty or blank text returns "unknown".
func Language(text string) string {
	if strings.TrimSpace(text) == "" {
		return "unknown"
	}

	info := whatlanggo.Detect(text)

	if info.Confidence < confidenceFloor && mostlyASCII(text) {
		lowers := " " + strings.ToLower(text) + " "
		for _, sig := range englishSignals {
			if strings.Contains(lowers, sig) {
				return "en"
			}
		}
	}

	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	return info.Lang.Iso6393()
}

// mostlyASCII reports whether more than 90% of the runes are ASCII.
func mostlyASCII(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 {
		return false
	}
	ascii := 0
	for _, r := range runes {
		if r < 128 {
			ascii++
		}
	}
	return float64(ascii)/float64(len(runes)) > 0.9
}
