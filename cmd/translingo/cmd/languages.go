package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fauziaiqbal/Translingo/internal/language"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported target languages",
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	for _, l := range language.Supported {
		fmt.Printf("%-8s %s\n", l.Code, l.Label)
	}
	return nil
}
