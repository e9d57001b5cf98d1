// Package language defines the fixed set of translation targets and
// normalization from human names to the codes the translator expects.
package language

import "strings"

// Language is an opaque (code, label) pair offered in the target selector.
type Language struct {
	Code  string `yaml:"code" json:"code"`   // e.g. "fr"
	Label string `yaml:"label" json:"label"` // e.g. "French"
}

// Supported is the fixed enumeration of selectable target languages.
// Order matters: it is the cycling order of the UI selector.
var Supported = []Language{
	{Code: "hi", Label: "Hindi"},
	{Code: "en", Label: "English"},
	{Code: "fr", Label: "French"},
	{Code: "es", Label: "Spanish"},
	{Code: "ja", Label: "Japanese"},
	{Code: "tr", Label: "Turkish"},
	{Code: "de", Label: "German"},
	{Code: "nl", Label: "Dutch"},
	{Code: "ko", Label: "Korean"},
	{Code: "ru", Label: "Russian"},
	{Code: "la", Label: "Latin"},
	{Code: "zh-CN", Label: "Chinese"},
}

// aliases maps language names and loose code spellings to canonical codes.
// Accepts both names and short codes, the way the backend always has.
var aliases = map[string]string{
	"english": "en", "en": "en",
	"urdu": "ur", "ur": "ur",
	"hindi": "hi", "hi": "hi",
	"japanese": "ja", "ja": "ja",
	"korean": "ko", "ko": "ko",
	"spanish": "es", "es": "es",
	"french": "fr", "fr": "fr",
	"russian": "ru", "ru": "ru",
	"arabic": "ar", "ar": "ar",
	"persian": "fa", "farsi": "fa", "fa": "fa",
	"italian": "it", "it": "it",
	"german": "de", "de": "de",
	"dutch": "nl", "nl": "nl",
	"turkish": "tr", "tr": "tr",
	"chinese": "zh-CN", "zh": "zh-CN", "zh-cn": "zh-CN", "zh-tw": "zh-TW",
	"greek": "el", "el": "el",
	"latin": "la", "la": "la",
	// "cyrillic" is not a language; treat it as Russian.
	"cyrillic": "ru", "sr": "sr",
}

// Normalize returns the canonical target code for a name or code.
// Unknown inputs pass through lowercased; empty input defaults to English.
func Normalize(input string) string {
	if input == "" {
		return "en"
	}
	key := strings.ToLower(strings.TrimSpace(input))
	if code, ok := aliases[key]; ok {
		return code
	}
	return key
}

// Lookup finds a supported language by its canonical code.
func Lookup(code string) (Language, bool) {
	for _, l := range Supported {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Label returns the display label for a code, or the code itself when the
// language is not part of the selector set.
func Label(code string) string {
	if l, ok := Lookup(code); ok {
		return l.Label
	}
	return code
}
