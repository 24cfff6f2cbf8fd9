package webpack

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch drops cached stats whenever a stats file changes, until ctx is
// cancelled. File sources are watched with fsnotify; storage sources are
// checked for a new ETag every WatchInterval.
func (r *Registry) Watch(ctx context.Context) error {
	if r.cfg.Source == SourceStorage {
		return r.pollStorage(ctx)
	}
	return r.watchFiles(ctx)
}

func (r *Registry) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories: webpack replaces stats files rather than writing in place.
	apps := make(map[string][]string)
	dirs := make(map[string]struct{})
	for app, file := range r.files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		apps[abs] = append(apps[abs], app)
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	r.logger.Info("Watching bundle stats", zap.Int("files", len(apps)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			for _, app := range apps[abs] {
				r.invalidate(app)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			r.logger.Error("Stats watcher error", zap.Error(err))
		}
	}
}

func (r *Registry) pollStorage(ctx context.Context) error {
	versions := make(map[string]string, len(r.files))
	check := func() {
		for app, file := range r.files {
			src, ok := r.source(file).(StorageSource)
			if !ok {
				continue
			}
			version, err := src.Version(ctx)
			if err != nil {
				r.logger.Warn("Failed to check bundle stats", zap.String("app", app), zap.Error(err))
				continue
			}
			if last, seen := versions[app]; seen && last != version {
				r.invalidate(app)
			}
			versions[app] = version
		}
	}

	check()
	ticker := time.NewTicker(r.cfg.WatchInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			check()
		}
	}
}
