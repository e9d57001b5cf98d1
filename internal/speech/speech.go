// Package speech wraps speech-to-text and text-to-speech behind small
// capability-gated interfaces, so the UI can probe for availability before
// acting and tests can substitute fakes for both outcomes.
package speech

import (
	"context"
	"errors"
)

// ErrUnavailable marks a speech capability that is not present on this
// system. Callers surface it to the user once and do nothing further.
var ErrUnavailable = errors.New("speech capability unavailable")

// Recognizer captures one utterance from the microphone and returns its
// transcript. One-shot: no interim results, no cancellation beyond ctx.
type Recognizer interface {
	// Available reports whether recognition can work here. A nil error
	// means the capability gate is open.
	Available() error

	// Listen records a single utterance and transcribes it.
	Listen(ctx context.Context) (string, error)

	// Name identifies the engine.
	Name() string
}

// Synthesizer speaks text aloud in the given language.
type Synthesizer interface {
	// Available reports whether synthesis can work here.
	Available() error

	// Speak voices the text with the target language code. Empty text is
	// not an error; it simply produces no speech.
	Speak(ctx context.Context, text, langCode string) error

	// Name identifies the engine.
	Name() string
}

// UnavailableRecognizer is the closed-gate recognizer variant.
type UnavailableRecognizer struct {
	Reason string
}

func (u UnavailableRecognizer) Available() error {
	if u.Reason != "" {
		return errors.New(u.Reason)
	}
	return ErrUnavailable
}

func (u UnavailableRecognizer) Listen(ctx context.Context) (string, error) {
	return "", u.Available()
}

func (u UnavailableRecognizer) Name() string { return "unavailable" }

// UnavailableSynthesizer is the closed-gate synthesizer variant.
type UnavailableSynthesizer struct {
	Reason string
}

func (u UnavailableSynthesizer) Available() error {
	if u.Reason != "" {
		return errors.New(u.Reason)
	}
	return ErrUnavailable
}

func (u UnavailableSynthesizer) Speak(ctx context.Context, text, langCode string) error {
	return u.Available()
}

func (u UnavailableSynthesizer) Name() string { return "unavailable" }
