package tui

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/fauziaiqbal/Translingo/internal/clipboard"
	"github.com/fauziaiqbal/Translingo/internal/language"
	"github.com/fauziaiqbal/Translingo/internal/speech"
	"github.com/fauziaiqbal/Translingo/internal/translate"
	"github.com/fauziaiqbal/Translingo/internal/tui/banner"
)

// Animation timing. The reveal schedule is an 80ms settle followed by the
// three result lines at +0ms, +250ms and +500ms.
const (
	hueInterval   = 80 * time.Millisecond
	blinkInterval = 500 * time.Millisecond
	revealSettle  = 80 * time.Millisecond
	revealStep    = 250 * time.Millisecond
)

// resultLines is how many staged lines a result reveals.
const resultLines = 3

// Message types
type translateDoneMsg struct {
	seq    int
	result *translate.Result
	err    error
}

type revealMsg struct {
	seq   int
	stage int
}

type hueTickMsg time.Time

type blinkTickMsg time.Time

type listenDoneMsg struct {
	transcript string
	err        error
}

type speakDoneMsg struct {
	err error
}

type clearCopiedMsg struct{}

// Model is the single translator view: input, language selector, result
// pane with staged reveal, and the decorative animated banner.
type Model struct {
	input       textinput.Model
	translator  translate.Translator
	recognizer  speech.Recognizer
	synthesizer speech.Synthesizer
	banner      *banner.Renderer

	targetIdx int // index into language.Supported

	result *translate.Result
	reveal [resultLines]bool

	// Request bookkeeping: only the newest submission's response applies.
	seq int

	loading   bool
	listening bool
	blinkOn   bool
	hue       float64
	alert     string
	copied    bool

	width  int
	height int
	ready  bool
}

// New creates the translator view. Any of recognizer/synthesizer may be an
// unavailable variant; the view gates on Available before using them.
func New(translator translate.Translator, recognizer speech.Recognizer, synthesizer speech.Synthesizer, defaultTarget string) Model {
	ti := textinput.New()
	ti.Placeholder = "Type text to translate..."
	ti.Focus()
	ti.Width = 48
	ti.PromptStyle = InputPromptStyle
	ti.TextStyle = InputTextStyle

	targetIdx := 0
	for i, l := range language.Supported {
		if l.Code == language.Normalize(defaultTarget) {
			targetIdx = i
			break
		}
	}

	return Model{
		input:       ti,
		translator:  translator,
		recognizer:  recognizer,
		synthesizer: synthesizer,
		banner:      banner.New(),
		targetIdx:   targetIdx,
	}
}

// Target returns the currently selected target language.
func (m Model) Target() language.Language {
	return language.Supported[m.targetIdx]
}

// Init starts the hue rotation; it runs for the life of the program.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, hueTick())
}

func hueTick() tea.Cmd {
	return tea.Tick(hueInterval, func(t time.Time) tea.Msg {
		return hueTickMsg(t)
	})
}

func blinkTick() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return blinkTickMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The alert is blocking: any key dismisses it, nothing else runs.
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "tab":
			m.targetIdx = (m.targetIdx + 1) % len(language.Supported)
			return m, nil
		case "shift+tab":
			m.targetIdx = (m.targetIdx - 1 + len(language.Supported)) % len(language.Supported)
			return m, nil
		case "ctrl+r":
			return m.startListening()
		case "ctrl+p":
			return m.speak()
		case "ctrl+y":
			if m.result != nil && m.result.Translated != "" {
				if err := clipboard.Write(m.result.Translated); err == nil {
					m.copied = true
					return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
						return clearCopiedMsg{}
					})
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case hueTickMsg:
		m.hue = math.Mod(m.hue+8, 360)
		return m, hueTick()

	case blinkTickMsg:
		// The blink timer lives only while loading; once loading ends the
		// tick is simply not rescheduled.
		if !m.loading {
			m.blinkOn = false
			return m, nil
		}
		m.blinkOn = !m.blinkOn
		return m, blinkTick()

	case translateDoneMsg:
		// A stale response (user submitted again) is dropped whole.
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			log.Printf("translate request failed: %v", msg.err)
			m.alert = "Translation failed. Is the backend running?"
			return m, nil
		}
		m.result = msg.result
		seq := m.seq
		return m, tea.Tick(revealSettle, func(time.Time) tea.Msg {
			return revealMsg{seq: seq, stage: 0}
		})

	case revealMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.reveal[msg.stage] = true
		if msg.stage+1 < resultLines {
			seq, stage := m.seq, msg.stage+1
			return m, tea.Tick(revealStep, func(time.Time) tea.Msg {
				return revealMsg{seq: seq, stage: stage}
			})
		}
		return m, nil

	case listenDoneMsg:
		m.listening = false
		if msg.err != nil {
			// Recognition errors clear the listening state silently.
			log.Printf("speech recognition failed: %v", msg.err)
			return m, nil
		}
		m.input.SetValue(msg.transcript)
		m.input.CursorEnd()
		return m, nil

	case speakDoneMsg:
		if msg.err != nil {
			log.Printf("speech synthesis failed: %v", msg.err)
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit issues a translation for the input text. Blank input is a no-op:
// no request, no loading change.
func (m Model) submit() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	wasLoading := m.loading
	m.seq++
	m.loading = true
	m.blinkOn = true
	m.reveal = [resultLines]bool{}

	seq := m.seq
	target := m.Target().Code
	translator := m.translator

	request := func() tea.Msg {
		result, err := translator.Translate(context.Background(), translate.Request{
			Text:   text,
			Target: target,
		})
		return translateDoneMsg{seq: seq, result: result, err: err}
	}

	// Resubmitting while a request is in flight must not start a second
	// blink chain; the one from the first submission is still ticking.
	if wasLoading {
		return m, request
	}
	return m, tea.Batch(request, blinkTick())
}

// startListening begins a one-shot speech recognition session.
func (m Model) startListening() (Model, tea.Cmd) {
	if m.recognizer == nil {
		m.alert = "Speech recognition is not available on this system."
		return m, nil
	}
	if err := m.recognizer.Available(); err != nil {
		log.Printf("speech recognition unavailable: %v", err)
		m.alert = "Speech recognition is not available on this system."
		return m, nil
	}
	if m.listening {
		return m, nil
	}

	m.listening = true
	recognizer := m.recognizer
	return m, func() tea.Msg {
		transcript, err := recognizer.Listen(context.Background())
		return listenDoneMsg{transcript: transcript, err: err}
	}
}

// speak voices the current translation in the selected target language.
// With no result yet the utterance text is empty and nothing is voiced.
func (m Model) speak() (Model, tea.Cmd) {
	if m.synthesizer == nil {
		m.alert = "Speech synthesis is not available on this system."
		return m, nil
	}
	if err := m.synthesizer.Available(); err != nil {
		log.Printf("speech synthesis unavailable: %v", err)
		m.alert = "Speech synthesis is not available on this system."
		return m, nil
	}

	text := ""
	if m.result != nil {
		text = m.result.Translated
	}
	target := m.Target().Code
	synthesizer := m.synthesizer

	return m, func() tea.Msg {
		err := synthesizer.Speak(context.Background(), text, target)
		return speakDoneMsg{err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n\n")

	b.WriteString(InputBoxStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	b.WriteString(m.renderSelector())
	b.WriteString("\n")

	if status := m.renderStatus(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(m.renderResult())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	content := b.String()

	if m.alert != "" {
		return m.renderAlert()
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// renderSelector renders the target language picker line.
func (m Model) renderSelector() string {
	l := m.Target()
	return SelectorLabelStyle.Render("Target:") +
		SelectorValueStyle.Render("◀ "+l.Label+" ▶") +
		SelectorCodeStyle.Render("("+l.Code+")")
}

// renderStatus renders the transient loading/listening line.
func (m Model) renderStatus() string {
	switch {
	case m.loading && m.blinkOn:
		return LoadingStyle.Render("Translating...")
	case m.loading:
		return LoadingStyle.Faint(true).Render("Translating...")
	case m.listening:
		return ListeningStyle.Render("● Listening...")
	}
	return ""
}

// renderResult renders the three staged result lines. Lines not yet
// revealed are held back entirely so they appear one by one.
func (m Model) renderResult() string {
	wrapWidth := 52
	if m.width > 0 && m.width-16 < wrapWidth {
		wrapWidth = m.width - 16
	}

	var lines []string
	if m.reveal[0] {
		lines = append(lines, ResultLabelStyle.Render("Language:")+
			ResultValueStyle.Render(language.Label(m.result.SourceLanguage)+" ("+m.result.SourceLanguage+")"))
	}
	if m.reveal[1] {
		lines = append(lines, ResultLabelStyle.Render("Translation:")+
			ResultValueStyle.Render(wordWrap(m.result.Translated, wrapWidth)))
	}
	if m.reveal[2] {
		lines = append(lines, ResultLabelStyle.Render("Romanized:")+
			ResultRomanStyle.Render(wordWrap(m.result.Romanized, wrapWidth)))
	}
	if len(lines) == 0 {
		return ""
	}

	body := strings.Join(lines, "\n")
	if m.copied {
		body += "\n\n" + CopiedStyle.Render("Copied!")
	}
	return ResultBoxStyle.Render(body)
}

// renderHelp renders the key hints, dimming speak until a result exists.
func (m Model) renderHelp() string {
	parts := []string{
		"enter: translate",
		"tab: language",
		"ctrl+r: speak to type",
	}

	speakHint := "ctrl+p: hear it"
	if m.result == nil {
		parts = append(parts, HelpDisabledStyle.Render(speakHint))
	} else {
		parts = append(parts, speakHint)
		parts = append(parts, "ctrl+y: copy")
	}
	parts = append(parts, "esc: quit")

	return HelpStyle.Render(strings.Join(parts, " • "))
}

// renderAlert renders the blocking notice overlay.
func (m Model) renderAlert() string {
	box := AlertBoxStyle.Render(
		AlertTitleStyle.Render("Notice") + "\n" +
			wordWrap(m.alert, 50) + "\n\n" +
			AlertHintStyle.Render("Press any key to continue"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// wordWrap wraps text at the given display width.
func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 52
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if currentWidth+w+1 > width && currentWidth > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			current.WriteString(" ")
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += w
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return strings.Join(lines, "\n")
}
