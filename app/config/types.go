package config

// SiteConfig represents the complete site configuration
type SiteConfig struct {
	Author          string            `yaml:"author"`
	OriginalHost    string            `yaml:"original_host"`
	ExcludedLabels  []string          `yaml:"excluded_labels"`
	CategoryMapping []CategoryMapping `yaml:"category_mapping"`
	QuickLinks      []string          `yaml:"quick_links"`
}

// CategoryMapping maps a label substring to a category slug.
// Declaration order is lookup order.
type CategoryMapping struct {
	Label string `yaml:"label"`
	Slug  string `yaml:"slug"`
}
