package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the site configuration
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader for the given file path
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the site configuration file. A missing file is not an error:
// the built-in defaults are returned instead.
func (l *Loader) Load() (*SiteConfig, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		slog.Debug("Site configuration file not found, using defaults", "path", l.path)
		return Default(), nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site configuration: %w", err)
	}

	var config SiteConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse site configuration: %w", err)
	}

	l.setDefaults(&config)

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid site configuration %s: %w", l.path, err)
	}

	slog.Debug("Site configuration loaded", "path", l.path)

	return &config, nil
}

// Default returns the built-in site configuration.
func Default() *SiteConfig {
	return &SiteConfig{
		Author:       "Cheonkam Jeong",
		OriginalHost: "cheonkamjeong.blogspot.com",
		ExcludedLabels: []string{
			"ai ethics & law",
			"ai ethics",
			"law",
		},
		CategoryMapping: []CategoryMapping{
			{Label: "speech technology", Slug: "speech-technology"},
			{Label: "book summary", Slug: "book-summaries"},
			{Label: "paper review", Slug: "paper-reviews"},
			{Label: "aesthetics", Slug: "aesthetics"},
			{Label: "algorithm", Slug: "algorithm"},
			{Label: "research", Slug: "research"},
			{Label: "tutorial", Slug: "tutorials"},
			{Label: "data science", Slug: "data-science"},
			{Label: "nlp", Slug: "nlp"},
			{Label: "linguistics", Slug: "linguistics"},
		},
		QuickLinks: []string{
			"book-summaries",
			"paper-reviews",
			"speech-technology",
			"algorithm",
			"aesthetics",
			"nlp",
		},
	}
}

// setDefaults fills unset fields from the built-in configuration
func (l *Loader) setDefaults(config *SiteConfig) {
	defaults := Default()

	if config.Author == "" {
		config.Author = defaults.Author
	}
	if config.OriginalHost == "" {
		config.OriginalHost = defaults.OriginalHost
	}
	if config.ExcludedLabels == nil {
		config.ExcludedLabels = defaults.ExcludedLabels
	}
	if config.CategoryMapping == nil {
		config.CategoryMapping = defaults.CategoryMapping
	}
	if config.QuickLinks == nil {
		config.QuickLinks = defaults.QuickLinks
	}
}

// validate validates the configuration
func (l *Loader) validate(config *SiteConfig) error {
	if config.Author == "" {
		return fmt.Errorf("author is required")
	}
	if config.OriginalHost == "" {
		return fmt.Errorf("original host is required")
	}

	for i, mapping := range config.CategoryMapping {
		if mapping.Label == "" {
			return fmt.Errorf("category mapping %d: label is required", i)
		}
		if mapping.Slug == "" {
			return fmt.Errorf("category mapping %d: slug is required", i)
		}
	}

	for i, link := range config.QuickLinks {
		if link == "" {
			return fmt.Errorf("quick link %d: slug must not be empty", i)
		}
	}

	return nil
}
