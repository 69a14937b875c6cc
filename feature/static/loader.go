package static

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	opts    Options
	handler *Handler
}

// NewFeature creates a new static-file feature.
func NewFeature(opts Options, l *zap.Logger) *Feature {
	return &Feature{opts: opts, handler: NewHandler(opts, l)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled reports whether a served directory is configured.
func (f *Feature) IsEnabled() bool {
	return f.opts.Root != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
