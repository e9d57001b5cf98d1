package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fauziaiqbal/Translingo/internal/translate"
)

// fakeTranslator records requests and returns a canned result.
type fakeTranslator struct {
	result *translate.Result
	err    error
	calls  int
	last   translate.Request
}

func (f *fakeTranslator) Translate(ctx context.Context, req translate.Request) (*translate.Result, error) {
	f.calls++
	f.last = req
	return f.result, f.err
}

// fakeRecognizer simulates the speech-to-text capability.
type fakeRecognizer struct {
	gateErr    error
	transcript string
	listenErr  error
	calls      int
}

func (f *fakeRecognizer) Available() error { return f.gateErr }
func (f *fakeRecognizer) Listen(ctx context.Context) (string, error) {
	f.calls++
	return f.transcript, f.listenErr
}
func (f *fakeRecognizer) Name() string { return "fake" }

// fakeSynthesizer records what it was asked to speak.
type fakeSynthesizer struct {
	gateErr  error
	calls    int
	lastText string
	lastLang string
}

func (f *fakeSynthesizer) Available() error { return f.gateErr }
func (f *fakeSynthesizer) Speak(ctx context.Context, text, langCode string) error {
	f.calls++
	f.lastText = text
	f.lastLang = langCode
	return nil
}
func (f *fakeSynthesizer) Name() string { return "fake" }

func newTestModel(tr translate.Translator) Model {
	m := New(tr, &fakeRecognizer{}, &fakeSynthesizer{}, "fr")
	m.width = 80
	m.height = 24
	m.ready = true
	return m
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m.input.SetValue(text)
	return m
}

func TestEmptySubmitIsNoOp(t *testing.T) {
	tr := &fakeTranslator{}

	for _, text := range []string{"", "   ", " \t "} {
		m := newTestModel(tr)
		m = typeText(t, m, text)

		m, cmd := pressEnter(t, m)
		if cmd != nil {
			t.Errorf("Expected no command for input %q", text)
		}
		if m.loading {
			t.Errorf("Expected loading to stay false for input %q", text)
		}
	}
	if tr.calls != 0 {
		t.Errorf("Expected no translator calls, got %d", tr.calls)
	}
}

func TestSubmitSetsLoadingAndClearsReveal(t *testing.T) {
	tr := &fakeTranslator{result: &translate.Result{SourceLanguage: "en", Translated: "bonjour", Romanized: "bonjour"}}
	m := newTestModel(tr)
	m.reveal = [resultLines]bool{true, true, true}
	m = typeText(t, m, "hello")

	m, cmd := pressEnter(t, m)
	if cmd == nil {
		t.Fatal("Expected a command from submit")
	}
	if !m.loading {
		t.Error("Expected loading true after submit")
	}
	if m.reveal != [resultLines]bool{} {
		t.Error("Expected reveal flags cleared on submit")
	}
}

func TestSuccessfulTranslationRevealsInOrder(t *testing.T) {
	tr := &fakeTranslator{result: &translate.Result{
		SourceLanguage: "en",
		Translated:     "bonjour",
		Romanized:      "bonjour",
	}}
	m := newTestModel(tr)
	m = typeText(t, m, "hello")

	m, cmd := pressEnter(t, m)
	msg := runCmdForTranslate(t, cmd)

	if tr.calls != 1 {
		t.Fatalf("Expected one translator call, got %d", tr.calls)
	}
	if tr.last.Text != "hello" || tr.last.Target != "fr" {
		t.Errorf("Unexpected request %+v", tr.last)
	}

	m, next := apply(t, m, msg)

	if m.loading {
		t.Error("Expected loading false after response")
	}
	if m.result == nil || m.result.Translated != "bonjour" {
		t.Fatalf("Expected stored result, got %+v", m.result)
	}
	if next == nil {
		t.Fatal("Expected reveal schedule to start")
	}

	// Walk the reveal schedule stage by stage.
	for stage := 0; stage < resultLines; stage++ {
		m, _ = apply(t, m, revealMsg{seq: m.seq, stage: stage})
		for s := 0; s <= stage; s++ {
			if !m.reveal[s] {
				t.Errorf("After stage %d, expected reveal[%d] true", stage, s)
			}
		}
		for s := stage + 1; s < resultLines; s++ {
			if m.reveal[s] {
				t.Errorf("After stage %d, expected reveal[%d] still false", stage, s)
			}
		}
	}

	view := m.View()
	for _, want := range []string{"English", "bonjour"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

// runCmdForTranslate executes the batched submit command and returns the
// translateDoneMsg produced by the request.
func runCmdForTranslate(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected a command")
	}
	return findTranslateMsg(t, cmd())
}

func findTranslateMsg(t *testing.T, msg tea.Msg) tea.Msg {
	t.Helper()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub == nil {
				continue
			}
			if done, ok := sub().(translateDoneMsg); ok {
				return done
			}
		}
		t.Fatal("No translateDoneMsg in batch")
	}
	return msg
}

func TestFailedTranslationAlertsAndPreservesResult(t *testing.T) {
	previous := &translate.Result{SourceLanguage: "en", Translated: "hola", Romanized: "hola"}
	tr := &fakeTranslator{err: fmt.Errorf("backend returned status 500")}

	m := newTestModel(tr)
	m.result = previous
	m = typeText(t, m, "hello")

	m, cmd := pressEnter(t, m)
	msg := runCmdForTranslate(t, cmd)
	m, _ = apply(t, m, msg)

	if m.loading {
		t.Error("Expected loading false after failure")
	}
	if m.alert == "" {
		t.Error("Expected an alert after failure")
	}
	if m.result != previous {
		t.Error("Expected previous result preserved on failure")
	}

	// The alert blocks: the next key only dismisses it.
	m, cmd = apply(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.alert != "" {
		t.Error("Expected alert dismissed by keypress")
	}
	if cmd != nil {
		t.Error("Expected dismissal to produce no command")
	}
}

func TestLanguageChangeIsInert(t *testing.T) {
	tr := &fakeTranslator{}
	previous := &translate.Result{SourceLanguage: "en", Translated: "bonjour", Romanized: "bonjour"}

	m := newTestModel(tr)
	m.result = previous

	start := m.Target()
	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if cmd != nil {
		t.Error("Expected no command from language change")
	}
	if m.Target() == start {
		t.Error("Expected target language to change")
	}
	if tr.calls != 0 {
		t.Errorf("Expected no translator calls, got %d", tr.calls)
	}
	if m.result != previous {
		t.Error("Expected result untouched by language change")
	}

	// Cycling back around lands on the starting language.
	for i := 0; i < 11; i++ {
		m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.Target() != start {
		t.Error("Expected selector to wrap around to the start")
	}
}

func TestSpeakWithNoResultPassesEmptyString(t *testing.T) {
	synth := &fakeSynthesizer{}
	m := New(&fakeTranslator{}, &fakeRecognizer{}, synth, "fr")
	m.ready = true

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if cmd == nil {
		t.Fatal("Expected a speak command")
	}
	cmd()

	if synth.calls != 1 {
		t.Fatalf("Expected one synthesis call, got %d", synth.calls)
	}
	if synth.lastText != "" {
		t.Errorf("Expected empty utterance text, got %q", synth.lastText)
	}
	if synth.lastLang != "fr" {
		t.Errorf("Expected utterance language fr, got %q", synth.lastLang)
	}
}

func TestSpeakUsesTranslatedTextAndTarget(t *testing.T) {
	synth := &fakeSynthesizer{}
	m := New(&fakeTranslator{}, &fakeRecognizer{}, synth, "ja")
	m.ready = true
	m.result = &translate.Result{SourceLanguage: "en", Translated: "こんにちは", Romanized: "konnichiha"}

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if cmd == nil {
		t.Fatal("Expected a speak command")
	}
	cmd()

	if synth.lastText != "こんにちは" {
		t.Errorf("Expected translated text spoken, got %q", synth.lastText)
	}
	if synth.lastLang != "ja" {
		t.Errorf("Expected target code ja, got %q", synth.lastLang)
	}
}

func TestSpeechRecognitionUnavailable(t *testing.T) {
	rec := &fakeRecognizer{gateErr: fmt.Errorf("no microphone")}
	m := New(&fakeTranslator{}, rec, &fakeSynthesizer{}, "fr")
	m.ready = true
	m = typeText(t, m, "typed text")

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd != nil {
		t.Error("Expected no command when capability gate is closed")
	}
	if m.alert == "" {
		t.Error("Expected exactly one user notice")
	}
	if m.listening {
		t.Error("Expected listening to stay false")
	}
	if m.input.Value() != "typed text" {
		t.Errorf("Expected text field untouched, got %q", m.input.Value())
	}
	if rec.calls != 0 {
		t.Errorf("Expected no Listen calls, got %d", rec.calls)
	}
}

func TestSpeechRecognitionReplacesTextWholesale(t *testing.T) {
	rec := &fakeRecognizer{transcript: "bonjour tout le monde"}
	m := New(&fakeTranslator{}, rec, &fakeSynthesizer{}, "fr")
	m.ready = true
	m = typeText(t, m, "old text")

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd == nil {
		t.Fatal("Expected a listen command")
	}
	if !m.listening {
		t.Error("Expected listening true while session runs")
	}

	m, _ = apply(t, m, cmd())
	if m.listening {
		t.Error("Expected listening cleared after transcript")
	}
	if m.input.Value() != "bonjour tout le monde" {
		t.Errorf("Expected transcript to replace text, got %q", m.input.Value())
	}
}

func TestSpeechRecognitionErrorIsSilent(t *testing.T) {
	rec := &fakeRecognizer{listenErr: fmt.Errorf("mic error")}
	m := New(&fakeTranslator{}, rec, &fakeSynthesizer{}, "fr")
	m.ready = true
	m = typeText(t, m, "keep me")

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m, _ = apply(t, m, cmd())

	if m.listening {
		t.Error("Expected listening cleared after error")
	}
	if m.alert != "" {
		t.Error("Expected no notice for a recognition runtime error")
	}
	if m.input.Value() != "keep me" {
		t.Errorf("Expected text field untouched, got %q", m.input.Value())
	}
}

func TestStaleResponseIsDropped(t *testing.T) {
	tr := &fakeTranslator{result: &translate.Result{SourceLanguage: "en", Translated: "first", Romanized: "first"}}
	m := newTestModel(tr)
	m = typeText(t, m, "one")

	m, _ = pressEnter(t, m)
	staleSeq := m.seq

	// Second submission before the first resolves.
	m = typeText(t, m, "two")
	m, _ = pressEnter(t, m)

	m, cmd := apply(t, m, translateDoneMsg{
		seq:    staleSeq,
		result: &translate.Result{SourceLanguage: "en", Translated: "stale", Romanized: "stale"},
	})
	if m.result != nil {
		t.Error("Expected stale response to be dropped")
	}
	if !m.loading {
		t.Error("Expected loading to remain true for the live request")
	}
	if cmd != nil {
		t.Error("Expected no reveal schedule for a stale response")
	}

	// The live response lands normally.
	m, _ = apply(t, m, translateDoneMsg{seq: m.seq, result: tr.result})
	if m.result == nil || m.result.Translated != "first" {
		t.Error("Expected live response to apply")
	}
}

func TestResubmitWhileLoadingKeepsOneBlinkChain(t *testing.T) {
	tr := &fakeTranslator{result: &translate.Result{SourceLanguage: "en", Translated: "bonjour", Romanized: "bonjour"}}
	m := newTestModel(tr)
	m = typeText(t, m, "one")

	m, cmd := pressEnter(t, m)
	if _, ok := cmd().(tea.BatchMsg); !ok {
		t.Fatal("Expected first submit to batch the request with the blink tick")
	}

	// Second submission while the first is still loading: only the
	// request, no second blink chain.
	m = typeText(t, m, "two")
	m, cmd = pressEnter(t, m)
	if cmd == nil {
		t.Fatal("Expected a command from resubmit")
	}
	msg := cmd()
	if _, ok := msg.(tea.BatchMsg); ok {
		t.Error("Expected resubmit not to start another blink chain")
	}
	if _, ok := msg.(translateDoneMsg); !ok {
		t.Errorf("Expected resubmit command to issue the request, got %T", msg)
	}
}

func TestStaleRevealIsDropped(t *testing.T) {
	m := newTestModel(&fakeTranslator{})
	m.seq = 2

	m, _ = apply(t, m, revealMsg{seq: 1, stage: 0})
	if m.reveal[0] {
		t.Error("Expected stale reveal message to be ignored")
	}
}

func TestBlinkStopsWhenLoadingEnds(t *testing.T) {
	m := newTestModel(&fakeTranslator{})
	m.loading = true
	m.blinkOn = true

	m, cmd := apply(t, m, blinkTickMsg{})
	if cmd == nil {
		t.Error("Expected blink to reschedule while loading")
	}
	if m.blinkOn {
		t.Error("Expected blink to toggle off")
	}

	m.loading = false
	m, cmd = apply(t, m, blinkTickMsg{})
	if cmd != nil {
		t.Error("Expected blink timer to stop once loading ends")
	}
	if m.blinkOn {
		t.Error("Expected blink flag cleared on teardown")
	}
}

func TestHueTickKeepsRunning(t *testing.T) {
	m := newTestModel(&fakeTranslator{})
	start := m.hue

	m, cmd := apply(t, m, hueTickMsg{})
	if cmd == nil {
		t.Error("Expected hue rotation to reschedule forever")
	}
	if m.hue == start {
		t.Error("Expected hue to advance")
	}
}
