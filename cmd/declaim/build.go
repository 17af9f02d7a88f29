package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/declaim/internal/adapters/secondary/renderer"
)

var (
	buildFormat string
	buildOutput string
)

// buildCmd parses a deck file and writes it out in the requested format
var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Parse a deck file and write the result as HTML, JSON, or YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "html", "Output format: html, json, or yaml")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output file (default: stdout)")
	buildCmd.Flags().String("default-language", "", "Language for bare !code directives")
	buildCmd.Flags().String("default-runner", "", "Runner for bare !code directives")
	buildCmd.Flags().Bool("sanitize", false, "Sanitize rendered HTML")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	deckPath := args[0]

	cfg, err := loadConfig(cmd, deckPath)
	if err != nil {
		return err
	}

	deck, err := newDeckService(cfg).Parse(cmd.Context(), deckPath)
	if err != nil {
		return fmt.Errorf("parsing deck: %w", err)
	}

	var out []byte
	switch strings.ToLower(buildFormat) {
	case "html":
		tmplRenderer, err := renderer.NewTemplateRenderer()
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err = tmplRenderer.RenderDeck(cmd.Context(), deck)
		if err != nil {
			return fmt.Errorf("rendering deck: %w", err)
		}
	case "json":
		out, err = json.MarshalIndent(renderer.NewDeckView(deck), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding deck: %w", err)
		}
		out = append(out, '\n')
	case "yaml":
		out, err = yaml.Marshal(renderer.NewDeckView(deck))
		if err != nil {
			return fmt.Errorf("encoding deck: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want html, json, or yaml)", buildFormat)
	}

	if buildOutput == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(buildOutput), 0750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(buildOutput, out, 0644); err != nil { // #nosec G306 - rendered deck output is not sensitive
		return fmt.Errorf("writing %s: %w", buildOutput, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d slides)\n", buildOutput, deck.SlideCount())
	return nil
}
