package config

import (
	"github.com/fredcamaral/declaim/internal/domain/entities"
)

// Merger combines configurations from multiple sources with later sources
// taking precedence over earlier ones.
type Merger struct{}

// NewMerger creates a new configuration merger
func NewMerger() *Merger {
	return &Merger{}
}

// Merge merges multiple configurations with later configs taking precedence.
// Nil configs are skipped; with no configs at all the defaults are returned.
func (m *Merger) Merge(configs ...*entities.Config) *entities.Config {
	result := GetDefaultConfig()

	for _, c := range configs {
		if c == nil {
			continue
		}
		m.mergeInto(result, c)
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *Merger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := *config

	if port, ok := flags["port"].(int); ok && port > 0 {
		result.Server.Port = port
	}

	if host, ok := flags["host"].(string); ok && host != "" {
		result.Server.Host = host
	}

	if lang, ok := flags["default-language"].(string); ok && lang != "" {
		result.Parser.DefaultLanguage = lang
	}

	if runner, ok := flags["default-runner"].(string); ok && runner != "" {
		result.Parser.DefaultRunner = runner
	}

	if sanitize, ok := flags["sanitize"].(bool); ok {
		result.Render.Sanitize = sanitize
	}

	if verbose, ok := flags["verbose"].(bool); ok && verbose {
		result.Logging.Verbose = true
	}

	return &result
}

// mergeInto overlays the non-zero fields of src onto dst.
func (m *Merger) mergeInto(dst, src *entities.Config) {
	if src.Parser.DefaultLanguage != "" {
		dst.Parser.DefaultLanguage = src.Parser.DefaultLanguage
	}
	if src.Parser.DefaultRunner != "" {
		dst.Parser.DefaultRunner = src.Parser.DefaultRunner
	}
	if src.Parser.MaxIncludeDepth > 0 {
		dst.Parser.MaxIncludeDepth = src.Parser.MaxIncludeDepth
	}

	if src.Render.Sanitize {
		dst.Render.Sanitize = true
	}

	if src.Server.Host != "" {
		dst.Server.Host = src.Server.Host
	}
	if src.Server.Port > 0 {
		dst.Server.Port = src.Server.Port
	}
	if src.Server.ReadTimeout > 0 {
		dst.Server.ReadTimeout = src.Server.ReadTimeout
	}
	if src.Server.WriteTimeout > 0 {
		dst.Server.WriteTimeout = src.Server.WriteTimeout
	}
	if src.Server.ShutdownTimeout > 0 {
		dst.Server.ShutdownTimeout = src.Server.ShutdownTimeout
	}
	if len(src.Server.CORSOrigins) > 0 {
		dst.Server.CORSOrigins = src.Server.CORSOrigins
	}

	if src.Watcher.IntervalMs > 0 {
		dst.Watcher.IntervalMs = src.Watcher.IntervalMs
	}
	if src.Watcher.DebounceMs > 0 {
		dst.Watcher.DebounceMs = src.Watcher.DebounceMs
	}

	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
	if src.Logging.Verbose {
		dst.Logging.Verbose = true
	}
}
