package translate

import (
	"context"
	"fmt"
	"testing"
)

// stubUpstream implements TextTranslator for testing.
type stubUpstream struct {
	text    string
	err     error
	calls   int
	lastTgt string
}

func (s *stubUpstream) TranslateText(ctx context.Context, text, target string) (string, error) {
	s.calls++
	s.lastTgt = target
	return s.text, s.err
}

func TestEngineTranslate(t *testing.T) {
	up := &stubUpstream{text: "привет"}
	engine := NewEngine(up)

	result, err := engine.Translate(context.Background(), Request{Text: "hello how are you", Target: "russian"})
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}

	if up.lastTgt != "ru" {
		t.Errorf("Expected normalized target ru, got %q", up.lastTgt)
	}
	if result.SourceLanguage != "en" {
		t.Errorf("Expected detected source en, got %q", result.SourceLanguage)
	}
	if result.Translated != "привет" {
		t.Errorf("Expected translated привет, got %q", result.Translated)
	}
	if result.Romanized != "privet" {
		t.Errorf("Expected romanized privet, got %q", result.Romanized)
	}
}

func TestEngineUpstreamError(t *testing.T) {
	up := &stubUpstream{err: fmt.Errorf("upstream down")}
	engine := NewEngine(up)

	_, err := engine.Translate(context.Background(), Request{Text: "hello", Target: "fr"})
	if err == nil {
		t.Fatal("Expected error when upstream fails")
	}
}

func TestEngineLatinTargetNoRomanization(t *testing.T) {
	up := &stubUpstream{text: "bonjour"}
	engine := NewEngine(up)

	result, err := engine.Translate(context.Background(), Request{Text: "hello", Target: "fr"})
	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if result.Romanized != "bonjour" {
		t.Errorf("Expected passthrough romanization, got %q", result.Romanized)
	}
}
