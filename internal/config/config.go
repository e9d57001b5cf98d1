// Package config handles loading and saving Translingo configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fauziaiqbal/Translingo/internal/speech"
)

// Config holds all user configuration.
type Config struct {
	// Endpoint is the translation backend base URL the TUI talks to.
	Endpoint string `yaml:"endpoint"`

	// Target is the default target language code.
	Target string `yaml:"target"`

	Speech SpeechConfig `yaml:"speech"`
	Server ServerConfig `yaml:"server"`
}

// SpeechConfig selects and tunes the speech engines.
type SpeechConfig struct {
	// Synthesizer is "espeak" or "openai".
	Synthesizer string `yaml:"synthesizer"`

	// OpenAIKey enables Whisper recognition and OpenAI synthesis. Falls
	// back to the OPENAI_API_KEY environment variable when empty.
	OpenAIKey string `yaml:"openai_key,omitempty"`

	ESpeak *speech.ESpeakConfig `yaml:"espeak,omitempty"`
}

// ServerConfig configures `translingo serve`.
type ServerConfig struct {
	Listen string `yaml:"listen"` // e.g. ":5000"
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Endpoint: "http://localhost:5000",
		Target:   "en",
		Speech: SpeechConfig{
			Synthesizer: "espeak",
			ESpeak:      speech.DefaultESpeakConfig(),
		},
		Server: ServerConfig{
			Listen: ":5000",
		},
	}
}

// Load reads config.yaml from the given directory, filling in defaults for
// anything missing. A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Speech.ESpeak == nil {
		cfg.Speech.ESpeak = speech.DefaultESpeakConfig()
	}

	return cfg, nil
}

// Save writes the configuration to config.yaml in the given directory.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// OpenAIKey resolves the API key from config or environment.
func (c *Config) OpenAIKey() string {
	if c.Speech.OpenAIKey != "" {
		return c.Speech.OpenAIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "translingo"), nil
}

// EnsureConfigDir creates dir if it doesn't exist, falling back to the
// default configuration directory when dir is empty, and returns the
// path used.
func EnsureConfigDir(dir string) (string, error) {
	if dir == "" {
		d, err := GetConfigDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
