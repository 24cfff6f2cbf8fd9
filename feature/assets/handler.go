package assets

import (
	"errors"

	"revo-utils/core/logger"
	"revo-utils/core/webpack"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bundle lookups.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the assets routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Get("/", h.HandleListApps)
	group.Get("/:app/bundles/:bundle", h.HandleGetBundle)
	group.Get("/:app/static/*", h.HandleGetStatic)
}

// HandleListApps lists the configured apps.
// @Summary List Apps
// @Tags assets
// @Produce json
// @Success 200 {array} string "App names"
// @Router /assets [get]
func (h *Handler) HandleListApps(c *fiber.Ctx) error {
	return c.JSON(h.service.Apps())
}

// HandleGetBundle returns the files and tags of a bundle.
// @Summary Get Bundle
// @Description Use DEFAULT as app for the default stats file.
// @Tags assets
// @Produce json
// @Param app path string true "App name"
// @Param bundle path string true "Bundle name"
// @Param ext query string false "Only files with this extension, e.g. js or css"
// @Param attrs query string false "Extra attributes for each tag: async, defer, nomodule, crossorigin, integrity, media, nonce, referrerpolicy"
// @Success 200 {object} Bundle
// @Failure 400 {object} map[string]string "Unsupported attributes"
// @Failure 404 {object} map[string]string "Unknown app or bundle"
// @Failure 503 {object} map[string]string "Build failed or still compiling"
// @Router /assets/{app}/bundles/{bundle} [get]
func (h *Handler) HandleGetBundle(c *fiber.Ctx) error {
	attrs, err := webpack.SanitizeAttrs(c.Query("attrs"))
	if err != nil {
		return h.fail(c, err)
	}
	bundle, err := h.service.GetBundle(c.UserContext(), c.Params("app"), c.Params("bundle"), c.Query("ext"), attrs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(bundle)
}

// HandleGetStatic resolves a static asset to its URL.
// @Summary Get Static URL
// @Tags assets
// @Produce json
// @Param app path string true "App name"
// @Param asset path string true "Asset path"
// @Success 200 {object} map[string]string "URL"
// @Failure 404 {object} map[string]string "Unknown app"
// @Router /assets/{app}/static/{asset} [get]
func (h *Handler) HandleGetStatic(c *fiber.Ctx) error {
	asset := c.Params("*")
	if asset == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "asset name is required"})
	}
	url, err := h.service.GetStatic(c.UserContext(), c.Params("app"), asset)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var bundleErr *webpack.BundleError

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, webpack.ErrUnsafeAttrs):
		status = fiber.StatusBadRequest
	case errors.Is(err, webpack.ErrUnknownApp), errors.Is(err, webpack.ErrBundleNotFound):
		status = fiber.StatusNotFound
	case errors.As(err, &bundleErr), errors.Is(err, webpack.ErrLoaderTimeout), errors.Is(err, webpack.ErrBadStats):
		status = fiber.StatusServiceUnavailable
	}

	l := logger.WithRayID(h.logger, c)
	if status < fiber.StatusInternalServerError {
		l.Debug("Asset lookup failed", zap.Error(err))
	} else {
		l.Error("Asset lookup failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
