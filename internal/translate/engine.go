package translate

import (
	"context"
	"fmt"

	"github.com/fauziaiqbal/Translingo/internal/detect"
	"github.com/fauziaiqbal/Translingo/internal/language"
	"github.com/fauziaiqbal/Translingo/internal/romanize"
)

// TextTranslator is the upstream that turns text into the target language.
type TextTranslator interface {
	TranslateText(ctx context.Context, text, target string) (string, error)
}

// Engine is the server-side pipeline: detect the source language, translate
// through the upstream, romanize the result for the target script.
type Engine struct {
	upstream TextTranslator
}

// NewEngine creates an engine over the given upstream translator.
func NewEngine(upstream TextTranslator) *Engine {
	return &Engine{upstream: upstream}
}

// Translate runs the full pipeline. The target accepts names or codes.
func (e *Engine) Translate(ctx context.Context, req Request) (*Result, error) {
	target := language.Normalize(req.Target)

	src := detect.Language(req.Text)

	translated, err := e.upstream.TranslateText(ctx, req.Text, target)
	if err != nil {
		return nil, fmt.Errorf("translating to %s: %w", target, err)
	}

	return &Result{
		SourceLanguage: src,
		Translated:     translated,
		Romanized:      romanize.Text(translated, target),
	}, nil
}
