package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fauziaiqbal/Translingo/internal/translate"
)

// stubTranslator implements translate.Translator for testing.
type stubTranslator struct {
	result *translate.Result
	err    error
	calls  int
}

func (s *stubTranslator) Translate(ctx context.Context, req translate.Request) (*translate.Result, error) {
	s.calls++
	return s.result, s.err
}

func postTranslate(t *testing.T, stub *stubTranslator, body string) *http.Response {
	t.Helper()
	app := New(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestTranslateHandler(t *testing.T) {
	stub := &stubTranslator{result: &translate.Result{
		SourceLanguage: "en",
		Translated:     "bonjour",
		Romanized:      "bonjour",
	}}

	resp := postTranslate(t, stub, `{"text":"hello","target":"fr"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var result translate.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.SourceLanguage != "en" || result.Translated != "bonjour" || result.Romanized != "bonjour" {
		t.Errorf("Unexpected result: %+v", result)
	}
}

func TestTranslateHandlerEmptyText(t *testing.T) {
	stub := &stubTranslator{}

	resp := postTranslate(t, stub, `{"text":"   ","target":"fr"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 for blank text, got %d", resp.StatusCode)
	}
	if stub.calls != 0 {
		t.Errorf("Expected translator not to be called for blank text, got %d calls", stub.calls)
	}

	var result translate.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.SourceLanguage != "-" || result.Translated != "" || result.Romanized != "" {
		t.Errorf("Expected empty placeholder result, got %+v", result)
	}
}

func TestTranslateHandlerUpstreamFailure(t *testing.T) {
	stub := &stubTranslator{err: fmt.Errorf("upstream down")}

	resp := postTranslate(t, stub, `{"text":"hello","target":"fr"}`)
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("Expected 502, got %d", resp.StatusCode)
	}
}

func TestTranslateHandlerBadBody(t *testing.T) {
	stub := &stubTranslator{}

	resp := postTranslate(t, stub, `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
	if stub.calls != 0 {
		t.Errorf("Expected translator not to be called, got %d calls", stub.calls)
	}
}

func TestLanguagesHandler(t *testing.T) {
	app := New(&stubTranslator{})

	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Data []struct {
			Code  string `json:"code"`
			Label string `json:"label"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(payload.Data) != 12 {
		t.Errorf("Expected 12 languages, got %d", len(payload.Data))
	}
}
