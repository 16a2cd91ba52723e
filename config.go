package vsop87

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// Config locates the VSOP87 data files for Load.
type Config struct {
	// SeriesDir holds the raw VSOP87C.* series files.
	SeriesDir string
	// PrecomputedDir holds the precomputed daily tables written by
	// cmd/precompute. Defaults to SeriesDir.
	PrecomputedDir string
	// Precomputed enables loading the precomputed tables.
	Precomputed bool
	// Logger receives load progress and warnings. Defaults to a logfmt
	// logger on stdout.
	Logger kitlog.Logger
}

// ReadConfig loads conf.toml from the directory named by the VSOP87_CONFIG
// environment variable. Recognized keys: vsop87.directory (required),
// precomputed.directory and precomputed.enabled (default true).
func ReadConfig() (Config, error) {
	confPath := os.Getenv("VSOP87_CONFIG")
	if confPath == "" {
		return Config{}, fmt.Errorf("environment variable `VSOP87_CONFIG` is missing or empty")
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(confPath)
	v.SetDefault("precomputed.enabled", true)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s/conf.toml not found: %w", confPath, err)
	}
	cfg := Config{
		SeriesDir:      v.GetString("vsop87.directory"),
		PrecomputedDir: v.GetString("precomputed.directory"),
		Precomputed:    v.GetBool("precomputed.enabled"),
	}
	if cfg.SeriesDir == "" {
		return Config{}, fmt.Errorf("vsop87.directory not set in %s/conf.toml", confPath)
	}
	if cfg.PrecomputedDir == "" {
		cfg.PrecomputedDir = cfg.SeriesDir
	}
	return cfg, nil
}
