package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fauziaiqbal/Translingo/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize Translingo configuration",
	Long: `Write a default config.yaml to your config directory.

The file holds the backend endpoint, the default target language, the
listen address for 'translingo serve', and the speech engine settings.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", configPath)
	}

	if _, err := config.EnsureConfigDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(configDir, config.Default()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  1. Run 'translingo serve' to start the backend")
	fmt.Println("  2. Run 'translingo' in another terminal for the TUI")
	fmt.Println("  3. Set OPENAI_API_KEY to enable speech-to-text")

	return nil
}
