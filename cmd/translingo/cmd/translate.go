package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fauziaiqbal/Translingo/internal/language"
	"github.com/fauziaiqbal/Translingo/internal/translate"
)

var translateTarget string

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "Translate text once and print the result",
	Long: `Translate text without the TUI. Runs the translation locally,
no backend needed.

Example:
  translingo translate hello
  translingo translate --target ja "good morning"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateTarget, "target", "t", "", "target language (default from config)")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigWithOverrides()
	if err != nil {
		return err
	}

	target := translateTarget
	if target == "" {
		target = cfg.Target
	}

	engine := translate.NewEngine(translate.NewGoogleTranslator())
	result, err := engine.Translate(context.Background(), translate.Request{
		Text:   strings.Join(args, " "),
		Target: target,
	})
	if err != nil {
		return fmt.Errorf("translating: %w", err)
	}

	fmt.Printf("Language:    %s (%s)\n", language.Label(result.SourceLanguage), result.SourceLanguage)
	fmt.Printf("Translation: %s\n", result.Translated)
	if result.Romanized != "" && result.Romanized != result.Translated {
		fmt.Printf("Romanized:   %s\n", result.Romanized)
	}

	return nil
}
