package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// googleEndpoint is the unofficial web translation endpoint, the same one
// the deep-translator family of clients wraps. No API key required.
const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator translates via the Google web endpoint with source
// language auto-detection. A circuit breaker keeps a flapping upstream from
// being hammered by every request.
type GoogleTranslator struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewGoogleTranslator creates the upstream translator.
func NewGoogleTranslator() *GoogleTranslator {
	return &GoogleTranslator{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "google-translate",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// TranslateText translates text into the target code, returning the
// translated text only. The caller owns detection and romanization.
func (g *GoogleTranslator) TranslateText(ctx context.Context, text, target string) (string, error) {
	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.request(ctx, text, target)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (g *GoogleTranslator) request(ctx context.Context, text, target string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling translate endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse extracts the translated text from the endpoint's
// nested-array payload: [[["bonjour","hello",...], ...], ...]. Longer input
// is split across several segments that concatenate in order.
func parseGoogleResponse(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(outer) == 0 {
		return "", fmt.Errorf("empty response from translate endpoint")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("unmarshaling segments: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		b.WriteString(part)
	}

	translated := b.String()
	if translated == "" {
		return "", fmt.Errorf("no translation in response")
	}
	return translated, nil
}
