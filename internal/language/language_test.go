package language

import "testing"

func TestSupportedCount(t *testing.T) {
	if len(Supported) != 12 {
		t.Errorf("Expected 12 supported languages, got %d", len(Supported))
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty defaults to English", "", "en"},
		{"short code passes through", "fr", "fr"},
		{"name maps to code", "russian", "ru"},
		{"mixed case name", "Japanese", "ja"},
		{"bare zh maps to zh-CN", "zh", "zh-CN"},
		{"zh-cn casing fixed", "zh-cn", "zh-CN"},
		{"cyrillic proxies to ru", "cyrillic", "ru"},
		{"whitespace trimmed", "  hindi  ", "hi"},
		{"unknown passes through lowered", "EO", "eo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	l, ok := Lookup("ko")
	if !ok {
		t.Fatal("Expected ko to be a supported language")
	}
	if l.Label != "Korean" {
		t.Errorf("Expected label 'Korean', got %q", l.Label)
	}

	if _, ok := Lookup("xx"); ok {
		t.Error("Expected xx to be unsupported")
	}
}

func TestLabel(t *testing.T) {
	if got := Label("zh-CN"); got != "Chinese" {
		t.Errorf("Label(zh-CN) = %q, want Chinese", got)
	}
	if got := Label("eo"); got != "eo" {
		t.Errorf("Label(eo) = %q, want passthrough", got)
	}
}
