package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// captureSeconds is how long a one-shot recognition session records.
const captureSeconds = 5

// WhisperRecognizer records a short clip from the default microphone and
// transcribes it with the OpenAI Whisper API.
type WhisperRecognizer struct {
	client  *openai.Client
	apiKey  string
	capture string // recording binary: arecord or sox's rec
}

// NewWhisperRecognizer creates a Whisper-backed recognizer.
func NewWhisperRecognizer(apiKey string) *WhisperRecognizer {
	r := &WhisperRecognizer{apiKey: apiKey}
	if apiKey != "" {
		r.client = openai.NewClient(apiKey)
	}
	for _, bin := range []string{"arecord", "rec"} {
		if _, err := exec.LookPath(bin); err == nil {
			r.capture = bin
			break
		}
	}
	return r
}

// Available reports whether both the API key and a capture tool exist.
func (r *WhisperRecognizer) Available() error {
	if r.apiKey == "" {
		return fmt.Errorf("%w: OpenAI API key not set", ErrUnavailable)
	}
	if r.capture == "" {
		return fmt.Errorf("%w: no audio capture tool (arecord or sox)", ErrUnavailable)
	}
	return nil
}

// Listen records one utterance and returns the Whisper transcript.
func (r *WhisperRecognizer) Listen(ctx context.Context) (string, error) {
	if err := r.Available(); err != nil {
		return "", err
	}

	wav := filepath.Join(os.TempDir(), fmt.Sprintf("translingo-capture-%d.wav", time.Now().UnixNano()))
	defer os.Remove(wav)

	if err := r.record(ctx, wav); err != nil {
		return "", fmt.Errorf("recording audio: %w", err)
	}

	resp, err := r.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: wav,
	})
	if err != nil {
		return "", fmt.Errorf("transcribing audio: %w", err)
	}

	return resp.Text, nil
}

func (r *WhisperRecognizer) record(ctx context.Context, outFile string) error {
	var cmd *exec.Cmd
	switch r.capture {
	case "arecord":
		cmd = exec.CommandContext(ctx, "arecord",
			"-f", "S16_LE", "-r", "16000", "-c", "1",
			"-d", fmt.Sprintf("%d", captureSeconds), outFile)
	default: // sox rec
		cmd = exec.CommandContext(ctx, "rec",
			"-r", "16000", "-c", "1", outFile,
			"trim", "0", fmt.Sprintf("%d", captureSeconds))
	}
	return cmd.Run()
}

// Name identifies the engine.
func (r *WhisperRecognizer) Name() string { return "whisper" }

// OpenAISynthesizer speaks through the OpenAI TTS API, playing the result
// with whatever local audio player is around.
type OpenAISynthesizer struct {
	client *openai.Client
	apiKey string
	voice  openai.SpeechVoice
	player string
}

// NewOpenAISynthesizer creates an OpenAI TTS synthesizer.
func NewOpenAISynthesizer(apiKey string) *OpenAISynthesizer {
	s := &OpenAISynthesizer{apiKey: apiKey, voice: openai.VoiceAlloy}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	for _, bin := range []string{"mpv", "ffplay", "afplay", "aplay"} {
		if _, err := exec.LookPath(bin); err == nil {
			s.player = bin
			break
		}
	}
	return s
}

// Available reports whether both the API key and an audio player exist.
func (s *OpenAISynthesizer) Available() error {
	if s.apiKey == "" {
		return fmt.Errorf("%w: OpenAI API key not set", ErrUnavailable)
	}
	if s.player == "" {
		return fmt.Errorf("%w: no audio player found", ErrUnavailable)
	}
	return nil
}

// Speak synthesizes the text and plays it. The language code rides along in
// the request text implicitly; OpenAI voices are multilingual.
func (s *OpenAISynthesizer) Speak(ctx context.Context, text, langCode string) error {
	if err := s.Available(); err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: s.voice,
	})
	if err != nil {
		return fmt.Errorf("synthesizing speech: %w", err)
	}
	defer resp.Close()

	mp3 := filepath.Join(os.TempDir(), fmt.Sprintf("translingo-speech-%d.mp3", time.Now().UnixNano()))
	defer os.Remove(mp3)

	f, err := os.Create(mp3)
	if err != nil {
		return fmt.Errorf("creating audio file: %w", err)
	}
	if _, err := io.Copy(f, resp); err != nil {
		f.Close()
		return fmt.Errorf("writing audio file: %w", err)
	}
	f.Close()

	return s.play(ctx, mp3)
}

func (s *OpenAISynthesizer) play(ctx context.Context, file string) error {
	var cmd *exec.Cmd
	switch s.player {
	case "ffplay":
		cmd = exec.CommandContext(ctx, "ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", file)
	default:
		cmd = exec.CommandContext(ctx, s.player, file)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("playing audio: %w", err)
	}
	return nil
}

// Name identifies the engine.
func (s *OpenAISynthesizer) Name() string { return "openai-tts" }
