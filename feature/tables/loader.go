package tables

import (
	"revo-utils/core/excel"
	"revo-utils/core/metrics"
	"revo-utils/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the tables feature. It is disabled without a database.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, cfg excel.Config, logger *zap.Logger, m *metrics.Metrics) *Feature {
	svc := NewService(db, client, bucket, cfg, logger, m)
	return &Feature{service: svc, handler: NewHandler(svc, logger), enabled: db != nil}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "tables"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
