package reconcile

import (
	"precinct-reconciler/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the reconcile service and handler into the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the reconcile feature.
func NewFeature(store storage.Client, bucket string, logg *zap.Logger) *Feature {
	service := NewService(store, bucket, logg)
	return &Feature{handler: NewHandler(service)}
}

// Name identifies the feature in logs.
func (f *Feature) Name() string {
	return "reconcile"
}

// IsEnabled reports whether the feature should be loaded. Reconcile only
// needs the storage client, which is always available.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
