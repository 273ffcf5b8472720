package cfg

import "cmp"

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type Cfg struct {
	// Output configuration
	OutDir         string
	SiteConfigPath string

	// Application metadata
	Debug   bool
	Version string
}

var globalCfg *Cfg

func Set(c *Cfg) {
	c.Version = GetVersion()
	globalCfg = c
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Set() first")
	}
	return globalCfg
}
