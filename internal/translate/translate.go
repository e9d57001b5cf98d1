// Package translate holds the translation wire types, the HTTP client the
// UI talks to, and the upstream engine the server runs.
package translate

import "context"

// Request is a single translation request.
type Request struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

// Result is a completed translation.
type Result struct {
	SourceLanguage string `json:"source_lang"`
	Translated     string `json:"translated"`
	Romanized      string `json:"romanized"`
}

// Translator translates text into a target language. The TUI and the CLI
// depend on this interface so tests can substitute a stub.
type Translator interface {
	Translate(ctx context.Context, req Request) (*Result, error)
}
