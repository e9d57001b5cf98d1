package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ESpeakConfig holds tuning for the espeak-ng synthesizer.
type ESpeakConfig struct {
	Speed     int `yaml:"speed"`     // words per minute (default 150)
	Pitch     int `yaml:"pitch"`     // 0-99 (default 50)
	Amplitude int `yaml:"amplitude"` // 0-200 (default 100)
}

// DefaultESpeakConfig returns the default espeak-ng settings.
func DefaultESpeakConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Speed:     150,
		Pitch:     50,
		Amplitude: 100,
	}
}

// ESpeak speaks through the espeak-ng engine. It voices text directly on
// the sound device rather than generating files.
type ESpeak struct {
	config *ESpeakConfig
	binary string
}

// NewESpeak creates an espeak-ng synthesizer.
func NewESpeak(config *ESpeakConfig) *ESpeak {
	if config == nil {
		config = DefaultESpeakConfig()
	}
	return &ESpeak{config: config, binary: findESpeak()}
}

func findESpeak() string {
	for _, bin := range []string{"espeak-ng", "espeak"} {
		if _, err := exec.LookPath(bin); err == nil {
			return bin
		}
	}
	return ""
}

// Available reports whether an espeak binary was found.
func (e *ESpeak) Available() error {
	if e.binary == "" {
		return fmt.Errorf("%w: espeak-ng not installed", ErrUnavailable)
	}
	return nil
}

// Speak voices the text using the espeak voice for langCode.
func (e *ESpeak) Speak(ctx context.Context, text, langCode string) error {
	if err := e.Available(); err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	cmd := exec.CommandContext(ctx, e.binary,
		"-v", espeakVoice(langCode),
		"-s", strconv.Itoa(e.config.Speed),
		"-p", strconv.Itoa(e.config.Pitch),
		"-a", strconv.Itoa(e.config.Amplitude),
		text,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("espeak failed: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Name identifies the engine.
func (e *ESpeak) Name() string { return "espeak-ng" }

// espeakVoice maps a target language code to an espeak voice name.
// Region subtags are dropped; espeak wants "zh", not "zh-CN".
func espeakVoice(langCode string) string {
	code := strings.ToLower(langCode)
	if i := strings.IndexByte(code, '-'); i > 0 {
		code = code[:i]
	}
	if code == "" {
		return "en"
	}
	return code
}
