package webpack

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultApp names the loader used when no app is given.
const DefaultApp = "DEFAULT"

const (
	SourceFile    = "file"
	SourceStorage = "storage"
)

// Config holds configuration for bundle resolution.
type Config struct {
	// StatsFile is the stats file of the default app.
	StatsFile string `mapstructure:"stats_file" default:"webpack-stats.json"`
	// Apps lists further apps as comma-separated name=stats_file pairs.
	Apps string `mapstructure:"apps" default:""`
	// BundleDirName is prefixed to chunk names that carry no publicPath.
	BundleDirName string `mapstructure:"bundle_dir_name" default:"webpack_bundles/"`
	// StaticURL is the base URL of static files.
	StaticURL string `mapstructure:"static_url" default:"/static/"`
	// Cache keeps parsed stats in memory until the source changes.
	Cache bool `mapstructure:"cache" default:"true"`
	// Source is "file" or "storage". Storage sources read stats files as
	// object keys in Bucket.
	Source string `mapstructure:"source" default:"file"`
	Bucket string `mapstructure:"bucket" default:"revo"`
	// PollIntervalMs is how often stats are re-read while webpack is compiling.
	PollIntervalMs int `mapstructure:"poll_interval_ms" default:"100"`
	// TimeoutSeconds bounds the wait for a compilation; 0 waits until the
	// request is cancelled.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// WatchIntervalSeconds is how often storage-backed stats are checked for changes.
	WatchIntervalSeconds int `mapstructure:"watch_interval_seconds" default:"30"`
	// Ignore is a comma-separated list of patterns for chunk names to skip.
	Ignore string `mapstructure:"ignore" default:".+\\.hot-update\\.js,.+\\.map"`
}

// StatsFiles returns the stats file of every app, including DefaultApp.
func (c Config) StatsFiles() (map[string]string, error) {
	files := map[string]string{DefaultApp: c.StatsFile}
	for _, pair := range strings.Split(c.Apps, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, file, ok := strings.Cut(pair, "=")
		name, file = strings.TrimSpace(name), strings.TrimSpace(file)
		if !ok || name == "" || file == "" {
			return nil, fmt.Errorf("invalid app %q, want name=stats_file", pair)
		}
		files[name] = file
	}
	return files, nil
}

// IgnorePatterns compiles Ignore. Patterns must match a whole chunk name.
func (c Config) IgnorePatterns() ([]*regexp.Regexp, error) {
	var patterns []*regexp.Regexp
	for _, p := range strings.Split(c.Ignore, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		re, err := regexp.Compile("^(?:" + p + ")$")
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// PollInterval returns the compile polling interval.
func (c Config) PollInterval() time.Duration {
	if c.PollIntervalMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// Timeout returns the compile wait limit, zero for none.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// WatchInterval returns the storage change check interval.
func (c Config) WatchInterval() time.Duration {
	if c.WatchIntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.WatchIntervalSeconds) * time.Second
}
