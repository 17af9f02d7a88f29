package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	httpserver "github.com/fredcamaral/declaim/internal/adapters/primary/http"
	"github.com/fredcamaral/declaim/internal/adapters/secondary/renderer"
	"github.com/fredcamaral/declaim/internal/adapters/secondary/watcher"
)

// serveCmd serves a deck over HTTP with live reload on file changes
var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Serve a deck over HTTP and reload the preview when it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	serveCmd.Flags().String("host", "", "Host to bind to")
	serveCmd.Flags().String("default-language", "", "Language for bare !code directives")
	serveCmd.Flags().String("default-runner", "", "Runner for bare !code directives")
	serveCmd.Flags().Bool("sanitize", false, "Sanitize rendered HTML")
	serveCmd.Flags().Bool("no-watch", false, "Disable file watching")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	deckPath := args[0]

	cfg, err := loadConfig(cmd, deckPath)
	if err != nil {
		return err
	}

	deckService := newDeckService(cfg)

	deck, err := deckService.Parse(ctx, deckPath)
	if err != nil {
		return fmt.Errorf("parsing deck: %w", err)
	}

	tmplRenderer, err := renderer.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	server := httpserver.NewServer(tmplRenderer, &cfg.Server)
	server.SetDeck(deck)

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if !noWatch {
		w := watcher.NewPollingWatcher(cfg.Watcher.GetInterval(), cfg.Watcher.GetDebounce())
		events, err := w.Watch(ctx, deck.SourcePath)
		if err != nil {
			return fmt.Errorf("watching deck: %w", err)
		}
		defer func() { _ = w.Stop() }()

		go func() {
			for range events {
				reparsed, err := deckService.Parse(ctx, deck.SourcePath)
				if err != nil {
					log.Printf("[WARN] reparsing deck: %v", err)
					continue
				}
				server.SetDeck(reparsed)
			}
		}()
	}

	return server.Start(ctx)
}
