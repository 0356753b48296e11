package export

import (
	"precinct-reconciler/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the export service and handler into the feature loader.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the export feature. It is disabled when no database
// connection is available, since every route needs the elections store.
func NewFeature(db *gorm.DB, store storage.Client, bucket string, logg *zap.Logger) *Feature {
	if db == nil {
		return &Feature{enabled: false}
	}
	service := NewService(db, logg)
	return &Feature{
		handler: NewHandler(service, store, bucket, logg),
		enabled: true,
	}
}

// Name identifies the feature in logs.
func (f *Feature) Name() string {
	return "export"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
