package config

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sources.yml
var embeddedSources []byte

const (
	DefaultWindowDays    = 7
	DefaultMaxItems      = 6
	DefaultSummaryLength = 180
	DefaultTimeout       = 30 // seconds
)

// Load parses the source configuration compiled into the binary.
func Load() (*SourceConfig, error) {
	return Parse(embeddedSources)
}

// Parse decodes, defaults and validates a YAML source configuration.
func Parse(data []byte) (*SourceConfig, error) {
	var config SourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	setDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid source configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(config *SourceConfig) {
	if config.Settings.WindowDays == 0 {
		config.Settings.WindowDays = DefaultWindowDays
	}
	if config.Settings.MaxItems == 0 {
		config.Settings.MaxItems = DefaultMaxItems
	}
	if config.Settings.SummaryLength == 0 {
		config.Settings.SummaryLength = DefaultSummaryLength
	}
	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = DefaultTimeout
	}
}

func validate(config *SourceConfig) error {
	if len(config.Feeds) == 0 {
		return fmt.Errorf("at least one feed is required")
	}

	for i, feedURL := range config.Feeds {
		if strings.TrimSpace(feedURL) == "" {
			return fmt.Errorf("feed URL at index %d is empty", i)
		}
	}

	for i, keyword := range config.Keywords {
		if strings.TrimSpace(keyword) == "" {
			return fmt.Errorf("keyword at index %d is empty", i)
		}
	}

	nonNegativeFields := map[string]int{
		"window days":    config.Settings.WindowDays,
		"max items":      config.Settings.MaxItems,
		"summary length": config.Settings.SummaryLength,
		"timeout":        config.Settings.Timeout,
	}

	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	if config.Editorial.Subject == "" {
		return fmt.Errorf("editorial subject is required")
	}

	return nil
}
