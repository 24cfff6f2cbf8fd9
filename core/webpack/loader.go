package webpack

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"revo-utils/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Loader resolves the bundles of one app.
type Loader struct {
	app           string
	source        Source
	cache         bool
	staticURL     string
	bundleDirName string
	ignore        []*regexp.Regexp
	pollInterval  time.Duration
	timeout       time.Duration

	logger  *zap.Logger
	metrics *metrics.Metrics
	group   singleflight.Group

	mu    sync.RWMutex
	stats *Stats
}

// NewLoader creates a loader for app reading stats from source.
func NewLoader(app string, source Source, cfg Config, logger *zap.Logger, m *metrics.Metrics) (*Loader, error) {
	ignore, err := cfg.IgnorePatterns()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		app:           app,
		source:        source,
		cache:         cfg.Cache,
		staticURL:     cfg.StaticURL,
		bundleDirName: cfg.BundleDirName,
		ignore:        ignore,
		pollInterval:  cfg.PollInterval(),
		timeout:       cfg.Timeout(),
		logger:        logger.With(zap.String("app", app)),
		metrics:       m,
	}, nil
}

// App returns the app name.
func (l *Loader) App() string {
	return l.app
}

// GetAssets returns the parsed stats, from the cache when enabled.
func (l *Loader) GetAssets(ctx context.Context) (*Stats, error) {
	if l.cache {
		l.mu.RLock()
		stats := l.stats
		l.mu.RUnlock()
		if stats != nil {
			return stats, nil
		}
	}
	return l.load(ctx)
}

// Invalidate drops the cached stats.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.stats = nil
	l.mu.Unlock()
}

// load reads the source, sharing one read between concurrent callers.
func (l *Loader) load(ctx context.Context) (*Stats, error) {
	v, err, _ := l.group.Do("stats", func() (any, error) {
		data, err := l.source.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("error reading %s, are you sure webpack has generated the file and the path is correct: %w", l.source, err)
		}
		stats, err := ParseStats(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", l.source, err)
		}

		l.metrics.RecordStatsReload(l.app)
		l.logger.Debug("Loaded bundle stats", zap.String("source", l.source.String()), zap.String("status", stats.Status))

		if l.cache {
			l.mu.Lock()
			l.stats = stats
			l.mu.Unlock()
		}
		return stats, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Stats), nil
}

// GetBundle returns the chunks of bundle with their URLs set, skipping
// ignored chunk names. It waits while webpack is compiling.
func (l *Loader) GetBundle(ctx context.Context, bundle string) ([]Chunk, error) {
	stats, err := l.GetAssets(ctx)
	if err != nil {
		return nil, err
	}
	if stats.Compiling() {
		if stats, err = l.wait(ctx); err != nil {
			return nil, err
		}
	}

	switch stats.Status {
	case StatusDone:
		chunks, ok := stats.Chunks[bundle]
		if !ok {
			return nil, fmt.Errorf("cannot resolve bundle %s: %w", bundle, ErrBundleNotFound)
		}
		return l.filter(chunks), nil
	case StatusError:
		e := &BundleError{Err: stats.Error, File: stats.File, Message: stats.Message}
		if e.Err == "" {
			e.Err = "Unknown Error"
		}
		return nil, e
	default:
		return nil, ErrBadStats
	}
}

// wait re-reads the stats every poll interval until webpack has finished.
func (l *Loader) wait(ctx context.Context) (*Stats, error) {
	var deadline <-chan time.Time
	if l.timeout > 0 {
		timer := time.NewTimer(l.timeout)
		defer timer.Stop()
		deadline = timer.C
	}
	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	l.logger.Debug("Waiting for webpack to compile")
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline:
			return nil, fmt.Errorf("%s after %s: %w", l.source, l.timeout, ErrLoaderTimeout)
		case <-ticker.C:
			stats, err := l.load(ctx)
			if err != nil {
				return nil, err
			}
			if !stats.Compiling() {
				return stats, nil
			}
		}
	}
}

func (l *Loader) filter(chunks []Chunk) []Chunk {
	out := make([]Chunk, 0, len(chunks))
	for _, c := range chunks {
		if l.ignored(c.Name) {
			continue
		}
		c.URL = l.chunkURL(c)
		out = append(out, c)
	}
	return out
}

func (l *Loader) ignored(name string) bool {
	for _, re := range l.ignore {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// chunkURL is the chunk's publicPath, or its name under the bundle directory
// of the static URL.
func (l *Loader) chunkURL(c Chunk) string {
	if c.PublicPath != "" {
		return c.PublicPath
	}
	return joinURL(l.staticURL, l.bundleDirName+c.Name)
}

// GetStatic returns the URL of a named asset under the build's publicPath,
// falling back to the static URL.
func (l *Loader) GetStatic(ctx context.Context, asset string) (string, error) {
	stats, err := l.GetAssets(ctx)
	if err != nil {
		return "", err
	}
	if stats.PublicPath != "" {
		return stats.PublicPath + asset, nil
	}
	return joinURL(l.staticURL, asset), nil
}

func joinURL(base, rel string) string {
	if base == "" {
		return rel
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(rel, "/")
}
