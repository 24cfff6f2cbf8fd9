package webpack

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"revo-utils/core/metrics"
	"revo-utils/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, opts ...Option) (*Registry, string) {
	t.Helper()
	dir := t.TempDir()
	writeStats(t, filepath.Join(dir, "webpack-stats.json"), legacyStats)
	writeStats(t, filepath.Join(dir, "admin-stats.json"), currentStats)

	cfg := testConfig(filepath.Join(dir, "webpack-stats.json"))
	cfg.Apps = "admin=" + filepath.Join(dir, "admin-stats.json")
	r, err := NewRegistry(cfg, opts...)
	require.NoError(t, err)
	return r, dir
}

func TestConfig_StatsFiles(t *testing.T) {
	files, err := Config{StatsFile: "a.json", Apps: " admin = b.json ,, shop=c.json"}.StatsFiles()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{DefaultApp: "a.json", "admin": "b.json", "shop": "c.json"}, files)

	_, err = Config{Apps: "admin"}.StatsFiles()
	assert.Error(t, err)

	_, err = Config{Ignore: "("}.IgnorePatterns()
	assert.Error(t, err)
}

func TestRegistry_Get(t *testing.T) {
	r, _ := newTestRegistry(t)
	assert.Equal(t, []string{DefaultApp, "admin"}, r.Apps())

	def, err := r.Get("")
	require.NoError(t, err)
	assert.Equal(t, DefaultApp, def.App())

	again, err := r.Get(DefaultApp)
	require.NoError(t, err)
	assert.Same(t, def, again)

	admin, err := r.Get("admin")
	require.NoError(t, err)
	assert.NotSame(t, def, admin)

	_, err = r.Get("shop")
	assert.ErrorIs(t, err, ErrUnknownApp)
}

func TestNewRegistry_Errors(t *testing.T) {
	_, err := NewRegistry(Config{StatsFile: "a.json", Source: SourceStorage})
	assert.Error(t, err, "storage source needs a client")

	_, err = NewRegistry(Config{StatsFile: "a.json", Source: "ftp"})
	assert.Error(t, err)

	_, err = NewRegistry(Config{StatsFile: "a.json", Ignore: "["})
	assert.Error(t, err)
}

func TestRegistry_GetFiles(t *testing.T) {
	r, _ := newTestRegistry(t)
	ctx := context.Background()

	chunks, err := r.GetFiles(ctx, "main", "", "")
	require.NoError(t, err)
	assert.Len(t, chunks, 2)

	chunks, err = r.GetFiles(ctx, "main", "css", "")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "main.css", chunks[0].Name)

	chunks, err = r.GetFiles(ctx, "main", "js", "admin")
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "/static/webpack_bundles/vendor.js", chunks[1].URL)
}

func TestRegistry_GetAsTags(t *testing.T) {
	r, _ := newTestRegistry(t)

	tags, err := r.GetAsTags(context.Background(), "main", "", "", `defer`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`<script type="text/javascript" src="/static/webpack_bundles/main.js" defer></script>`,
		`<link type="text/css" href="https://cdn.test/build/main.css" rel="stylesheet" defer/>`,
	}, tags)

	tags, err = r.GetAsTags(context.Background(), "admin", "", "admin", "")
	require.NoError(t, err)
	assert.Equal(t, []string{`<link type="text/css" href="/static/webpack_bundles/admin.css" rel="stylesheet" />`}, tags)
}

func TestRegistry_GetStatic(t *testing.T) {
	r, _ := newTestRegistry(t)

	url, err := r.GetStatic(context.Background(), "logo.svg", "admin")
	require.NoError(t, err)
	assert.Equal(t, "/assets/logo.svg", url)

	_, err = r.GetStatic(context.Background(), "logo.svg", "nope")
	assert.ErrorIs(t, err, ErrUnknownApp)
}

func TestRegistry_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, _ := newTestRegistry(t, WithMetrics(metrics.New(reg)))

	_, err := r.GetFiles(context.Background(), "main", "", "")
	require.NoError(t, err)
	_, err = r.GetFiles(context.Background(), "missing", "", "")
	require.Error(t, err)

	count, err := testutil.GatherAndCount(reg, "revo_asset_lookups_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "ok and error series")

	count, err = testutil.GatherAndCount(reg, "revo_asset_stats_reloads_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegistry_StorageSource(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "static", "builds/webpack-stats.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader(currentStats)), nil).Once()

	cfg := testConfig("/builds/webpack-stats.json")
	cfg.Source = SourceStorage
	cfg.Bucket = "static"
	r, err := NewRegistry(cfg, WithStorage(client))
	require.NoError(t, err)

	chunks, err := r.GetFiles(context.Background(), "main", "js", "")
	require.NoError(t, err)
	assert.Len(t, chunks, 2)

	// cached: the object is read once
	_, err = r.GetFiles(context.Background(), "main", "js", "")
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestRegistry_StorageReadError(t *testing.T) {
	client := new(mocks.Client)
	boom := errors.New("access denied")
	client.On("GetObject", mock.Anything, "static", "webpack-stats.json", mock.Anything).Return(nil, boom)

	cfg := testConfig("webpack-stats.json")
	cfg.Source = SourceStorage
	cfg.Bucket = "static"
	r, err := NewRegistry(cfg, WithStorage(client))
	require.NoError(t, err)

	_, err = r.GetFiles(context.Background(), "main", "", "")
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_WatchFiles(t *testing.T) {
	r, dir := newTestRegistry(t)
	path := filepath.Join(dir, "webpack-stats.json")

	_, err := r.GetFiles(context.Background(), "main", "", "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Watch(ctx) }()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(strings.Replace(legacyStats, `"main.js"`, `"app.js"`, 1)), 0o644)
		chunks, err := r.GetFiles(context.Background(), "main", "js", "")
		return err == nil && len(chunks) == 1 && chunks[0].Name == "app.js"
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestRegistry_WatchStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "static", "webpack-stats.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(legacyStats)), nil).Once()
	client.On("GetObject", mock.Anything, "static", "webpack-stats.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(currentStats)), nil)
	client.On("StatObject", mock.Anything, "static", "webpack-stats.json", mock.Anything).
		Return(minio.ObjectInfo{ETag: "v1"}, nil).Once()
	client.On("StatObject", mock.Anything, "static", "webpack-stats.json", mock.Anything).
		Return(minio.ObjectInfo{ETag: "v2"}, nil)

	cfg := testConfig("webpack-stats.json")
	cfg.Source = SourceStorage
	cfg.Bucket = "static"
	cfg.WatchIntervalSeconds = 1
	r, err := NewRegistry(cfg, WithStorage(client))
	require.NoError(t, err)

	url, err := r.GetStatic(context.Background(), "x.png", "")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/build/x.png", url)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Watch(ctx) }()

	assert.Eventually(t, func() bool {
		url, err := r.GetStatic(context.Background(), "x.png", "")
		return err == nil && url == "/assets/x.png"
	}, 3*time.Second, 50*time.Millisecond)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	data, err := FileSource{Path: path}.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	assert.Equal(t, path, FileSource{Path: path}.String())
}
