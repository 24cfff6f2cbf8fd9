package webpack

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"revo-utils/core/metrics"
	"revo-utils/core/storage"

	"go.uber.org/zap"
)

// Registry owns the loaders of all configured apps. Loaders are created on
// first use and live as long as the registry.
type Registry struct {
	cfg     Config
	files   map[string]string
	storage storage.Client
	logger  *zap.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	loaders map[string]*Loader
}

// Option configures a Registry.
type Option func(*Registry)

// WithStorage sets the client used by storage sources.
func WithStorage(client storage.Client) Option {
	return func(r *Registry) { r.storage = client }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithMetrics sets the collectors for lookups and reloads.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// NewRegistry validates cfg and returns an empty registry.
func NewRegistry(cfg Config, opts ...Option) (*Registry, error) {
	files, err := cfg.StatsFiles()
	if err != nil {
		return nil, err
	}
	if _, err := cfg.IgnorePatterns(); err != nil {
		return nil, err
	}

	r := &Registry{
		cfg:     cfg,
		files:   files,
		logger:  zap.NewNop(),
		loaders: make(map[string]*Loader),
	}
	for _, opt := range opts {
		opt(r)
	}

	switch cfg.Source {
	case SourceFile, "":
	case SourceStorage:
		if r.storage == nil {
			return nil, fmt.Errorf("assets source %q requires a storage client", cfg.Source)
		}
	default:
		return nil, fmt.Errorf("unsupported assets source %q", cfg.Source)
	}
	return r, nil
}

// Apps returns the configured app names, sorted.
func (r *Registry) Apps() []string {
	apps := make([]string, 0, len(r.files))
	for app := range r.files {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	return apps
}

// Get returns the loader of app, DefaultApp when app is empty.
func (r *Registry) Get(app string) (*Loader, error) {
	if app == "" {
		app = DefaultApp
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loaders[app]; ok {
		return l, nil
	}
	file, ok := r.files[app]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownApp, app)
	}

	l, err := NewLoader(app, r.source(file), r.cfg, r.logger, r.metrics)
	if err != nil {
		return nil, err
	}
	r.loaders[app] = l
	return l, nil
}

func (r *Registry) source(file string) Source {
	if r.cfg.Source == SourceStorage {
		return StorageSource{Client: r.storage, Bucket: r.cfg.Bucket, Key: strings.TrimPrefix(filepath.ToSlash(file), "/")}
	}
	return FileSource{Path: file}
}

// GetFiles returns the chunks of bundle, only those ending in "."+ext when
// ext is set.
func (r *Registry) GetFiles(ctx context.Context, bundle, ext, app string) (chunks []Chunk, err error) {
	l, err := r.Get(app)
	if err != nil {
		return nil, err
	}
	defer func() { r.metrics.RecordAssetLookup(l.App(), err) }()

	all, err := l.GetBundle(ctx, bundle)
	if err != nil {
		return nil, err
	}
	if ext == "" {
		return all, nil
	}

	suffix := "." + strings.TrimPrefix(ext, ".")
	chunks = make([]Chunk, 0, len(all))
	for _, c := range all {
		if strings.HasSuffix(c.Name, suffix) {
			chunks = append(chunks, c)
		}
	}
	return chunks, nil
}

// GetAsTags renders the bundle's scripts and stylesheets as HTML tags, with
// attrs inserted verbatim into each tag. Other files are skipped.
func (r *Registry) GetAsTags(ctx context.Context, bundle, ext, app, attrs string) ([]string, error) {
	chunks, err := r.GetFiles(ctx, bundle, ext, app)
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, len(chunks))
	for _, c := range chunks {
		switch {
		case strings.HasSuffix(c.Name, ".js"), strings.HasSuffix(c.Name, ".js.gz"):
			tags = append(tags, fmt.Sprintf(`<script type="text/javascript" src="%s" %s></script>`, c.URL, attrs))
		case strings.HasSuffix(c.Name, ".css"), strings.HasSuffix(c.Name, ".css.gz"):
			tags = append(tags, fmt.Sprintf(`<link type="text/css" href="%s" rel="stylesheet" %s/>`, c.URL, attrs))
		}
	}
	return tags, nil
}

// GetStatic returns the URL of a webpack-emitted asset of app.
func (r *Registry) GetStatic(ctx context.Context, asset, app string) (string, error) {
	l, err := r.Get(app)
	if err != nil {
		return "", err
	}
	url, err := l.GetStatic(ctx, asset)
	r.metrics.RecordAssetLookup(l.App(), err)
	return url, err
}

// invalidate drops the cached stats of app if its loader exists.
func (r *Registry) invalidate(app string) {
	r.mu.Lock()
	l, ok := r.loaders[app]
	r.mu.Unlock()
	if ok {
		l.Invalidate()
		r.logger.Info("Bundle stats changed", zap.String("app", app))
	}
}
