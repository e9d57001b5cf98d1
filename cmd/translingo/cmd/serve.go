package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fauziaiqbal/Translingo/internal/server"
	"github.com/fauziaiqbal/Translingo/internal/translate"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the translation backend",
	Long: `Start the HTTP backend the TUI talks to.

The backend exposes:
  POST /api/translate  {"text": ..., "target": ...}
  GET  /api/languages

Example:
  translingo serve
  translingo serve --listen :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default from config, :5000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigWithOverrides()
	if err != nil {
		return err
	}

	listen := cfg.Server.Listen
	if serveListen != "" {
		listen = serveListen
	}

	engine := translate.NewEngine(translate.NewGoogleTranslator())
	app := server.New(engine)

	fmt.Printf("Translingo backend listening on %s\n", listen)
	return app.Listen(listen)
}
