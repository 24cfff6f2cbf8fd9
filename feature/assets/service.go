package assets

import (
	"context"

	"revo-utils/core/webpack"
)

// Bundle is the resolved content of one bundle.
type Bundle struct {
	App    string          `json:"app"`
	Bundle string          `json:"bundle"`
	Files  []webpack.Chunk `json:"files"`
	Tags   []string        `json:"tags"`
}

// Service resolves bundles through a webpack registry.
type Service struct {
	registry *webpack.Registry
}

// NewService creates a new assets service.
func NewService(registry *webpack.Registry) *Service {
	return &Service{registry: registry}
}

// Apps returns the configured app names.
func (s *Service) Apps() []string {
	return s.registry.Apps()
}

// GetBundle returns the files of bundle and their tags.
func (s *Service) GetBundle(ctx context.Context, app, bundle, ext, attrs string) (*Bundle, error) {
	files, err := s.registry.GetFiles(ctx, bundle, ext, app)
	if err != nil {
		return nil, err
	}
	tags, err := s.registry.GetAsTags(ctx, bundle, ext, app, attrs)
	if err != nil {
		return nil, err
	}
	return &Bundle{App: app, Bundle: bundle, Files: files, Tags: tags}, nil
}

// GetStatic returns the URL of asset.
func (s *Service) GetStatic(ctx context.Context, app, asset string) (string, error) {
	return s.registry.GetStatic(ctx, asset, app)
}
