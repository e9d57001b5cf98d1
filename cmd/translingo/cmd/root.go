// Package cmd contains all CLI commands for the Translingo tool.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fauziaiqbal/Translingo/internal/config"
	"github.com/fauziaiqbal/Translingo/internal/speech"
	"github.com/fauziaiqbal/Translingo/internal/translate"
	"github.com/fauziaiqbal/Translingo/internal/tui"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "translingo",
	Short: "Translingo - Translate between languages from your terminal",
	Long: `Translingo is a terminal translator. Type text, pick a target
language, and get the translation together with the detected source
language and a romanized reading for non-Latin scripts.

Speech is optional: with a microphone and an OpenAI API key you can
dictate text, and with espeak-ng (or an OpenAI key) you can hear the
translation spoken aloud.

Running 'translingo' without arguments launches the interactive TUI.`,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/translingo)")
	rootCmd.PersistentFlags().String("endpoint", "", "translation backend URL (overrides config)")

	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
}

// initConfig resolves the config directory and ENV variables.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("TRANSLINGO")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfigWithOverrides loads the user config and applies flag/env overrides.
func loadConfigWithOverrides() (*config.Config, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return nil, err
	}
	if endpoint := viper.GetString("endpoint"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	return cfg, nil
}

// buildSpeech assembles the speech engines from config. Missing
// prerequisites produce unavailable variants rather than errors; the UI
// gates on them per keypress.
func buildSpeech(cfg *config.Config) (speech.Recognizer, speech.Synthesizer) {
	var recognizer speech.Recognizer
	if key := cfg.OpenAIKey(); key != "" {
		recognizer = speech.NewWhisperRecognizer(key)
	} else {
		recognizer = speech.UnavailableRecognizer{Reason: "speech recognition needs an OpenAI API key"}
	}

	var synthesizer speech.Synthesizer
	switch cfg.Speech.Synthesizer {
	case "openai":
		if key := cfg.OpenAIKey(); key != "" {
			synthesizer = speech.NewOpenAISynthesizer(key)
		} else {
			synthesizer = speech.UnavailableSynthesizer{Reason: "openai synthesis needs an API key"}
		}
	default:
		synthesizer = speech.NewESpeak(cfg.Speech.ESpeak)
	}

	return recognizer, synthesizer
}

// runTUI launches the translator TUI.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigWithOverrides()
	if err != nil {
		return err
	}

	if os.Getenv("TRANSLINGO_DEBUG") != "" {
		f, err := tea.LogToFile("translingo-debug.log", "debug")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	}

	recognizer, synthesizer := buildSpeech(cfg)
	translator := translate.NewClient(cfg.Endpoint)

	p := tea.NewProgram(
		tui.New(translator, recognizer, synthesizer, cfg.Target),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
