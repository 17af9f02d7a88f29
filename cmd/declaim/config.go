package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/declaim/internal/adapters/secondary/config"
	"github.com/fredcamaral/declaim/internal/adapters/secondary/converter"
	"github.com/fredcamaral/declaim/internal/adapters/secondary/loader"
	"github.com/fredcamaral/declaim/internal/domain/entities"
	"github.com/fredcamaral/declaim/internal/domain/services"
)

// loadConfig assembles the effective configuration: defaults, then global
// config file, then a local declaim.toml next to the deck, then CLI flags.
func loadConfig(cmd *cobra.Command, deckPath string) (*entities.Config, error) {
	ctx := cmd.Context()
	cfgLoader := config.NewTOMLLoader()
	merger := config.NewMerger()

	global, err := cfgLoader.LoadGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	local, err := cfgLoader.LoadLocal(ctx, filepath.Dir(deckPath))
	if err != nil {
		return nil, fmt.Errorf("loading local config: %w", err)
	}

	cfg := merger.Merge(global, local)

	flags := map[string]interface{}{}
	if v, err := cmd.Flags().GetBool("verbose"); err == nil {
		flags["verbose"] = v
	}
	if cmd.Flags().Changed("default-language") {
		if v, err := cmd.Flags().GetString("default-language"); err == nil {
			flags["default-language"] = v
		}
	}
	if cmd.Flags().Changed("default-runner") {
		if v, err := cmd.Flags().GetString("default-runner"); err == nil {
			flags["default-runner"] = v
		}
	}
	if cmd.Flags().Changed("sanitize") {
		if v, err := cmd.Flags().GetBool("sanitize"); err == nil {
			flags["sanitize"] = v
		}
	}
	if cmd.Flags().Changed("port") {
		if v, err := cmd.Flags().GetInt("port"); err == nil {
			flags["port"] = v
		}
	}
	if cmd.Flags().Changed("host") {
		if v, err := cmd.Flags().GetString("host"); err == nil {
			flags["host"] = v
		}
	}

	cfg = merger.ApplyFlags(cfg, flags)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newDeckService wires the parse pipeline from configuration
func newDeckService(cfg *entities.Config) *services.DeckService {
	return services.NewDeckService(
		loader.NewFileSystemLoader(),
		converter.NewGoldmarkConverter(cfg.Render.Sanitize),
		cfg.Parser,
	)
}
