package tables

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"

	"revo-utils/core/excel"
	"revo-utils/core/logger"
	"revo-utils/core/pagination"
	"revo-utils/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for tables.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the tables routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tables")
	group.Get("/", h.HandleListTables)
	group.Get("/:table", h.HandleListPage)
	group.Get("/:table/rows", h.HandleListRows)
	group.Get("/:table/columns", h.HandleDescribe)
	group.Get("/:table/row/:id", h.HandleGetRow)
	group.Get("/:table/export", h.HandleExport)
}

// HandleListTables lists the tables of the database.
// @Summary List Tables
// @Tags tables
// @Produce json
// @Success 200 {array} string "Table names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /tables [get]
func (h *Handler) HandleListTables(c *fiber.Ctx) error {
	tables, err := h.service.ListTables(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(tables)
}

// HandleListPage returns one page of rows.
// @Summary List Rows By Page
// @Description Rows in primary key order, paginated with page and page_size (default 50, max 100000).
// @Tags tables
// @Produce json
// @Param table path string true "Table name"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} pagination.Page[map[string]any]
// @Failure 400 {object} map[string]string "Invalid table"
// @Failure 404 {object} map[string]string "Unknown table or page"
// @Router /tables/{table} [get]
func (h *Handler) HandleListPage(c *fiber.Ctx) error {
	return h.list(c, pagination.ParsePageNumber(c))
}

// HandleListRows returns a window of rows for Kendo UI data sources.
// @Summary List Rows By Offset
// @Description Rows in primary key order, paginated with take (max 100) and skip.
// @Tags tables
// @Produce json
// @Param table path string true "Table name"
// @Param take query int false "Rows to return"
// @Param skip query int false "Rows to skip"
// @Success 200 {object} pagination.Page[map[string]any]
// @Failure 404 {object} map[string]string "Unknown table"
// @Router /tables/{table}/rows [get]
func (h *Handler) HandleListRows(c *fiber.Ctx) error {
	return h.list(c, pagination.ParseLimitOffset(c))
}

func (h *Handler) list(c *fiber.Ctx, p pagination.Paginator) error {
	requestURL, err := url.Parse(c.BaseURL() + c.OriginalURL())
	if err != nil {
		requestURL = nil
	}
	page, err := h.service.List(c.UserContext(), c.Params("table"), p, requestURL)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(page)
}

// HandleDescribe returns the column definitions of a table.
// @Summary Describe Table
// @Tags tables
// @Produce json
// @Param table path string true "Table name"
// @Success 200 {object} Table
// @Failure 404 {object} map[string]string "Unknown table"
// @Router /tables/{table}/columns [get]
func (h *Handler) HandleDescribe(c *fiber.Ctx) error {
	t, err := h.service.Describe(c.UserContext(), c.Params("table"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(t)
}

// HandleGetRow returns one row by primary key.
// @Summary Get Row
// @Tags tables
// @Produce json
// @Param table path string true "Table name"
// @Param id path string true "Primary key value"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "Unknown table or row"
// @Router /tables/{table}/row/{id} [get]
func (h *Handler) HandleGetRow(c *fiber.Ctx) error {
	row, err := h.service.Row(c.UserContext(), c.Params("table"), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(row)
}

// HandleExport exports a table as an xlsx workbook.
// @Summary Export Table
// @Description Columns are given as path[:width[:header]] separated by commas; all columns when omitted.
// @Description With upload=true the workbook is stored in the bucket and its key returned.
// @Tags tables
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Param table path string true "Table name"
// @Param columns query string false "Column specs, e.g. id:10,name:30:Customer"
// @Param upload query bool false "Store in the bucket instead of downloading"
// @Success 200 {file} file "Workbook"
// @Success 201 {object} ExportResult "Uploaded export"
// @Failure 400 {object} map[string]string "Invalid columns"
// @Failure 404 {object} map[string]string "Unknown table"
// @Router /tables/{table}/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	table := c.Params("table")

	var specs []excel.ColumnSpec
	if raw := c.Query("columns"); raw != "" {
		parsed, err := excel.ParseColumns(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		specs = parsed
	}
	upload, err := utils.ToBoolean(c.Query("upload"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if upload {
		result, err := h.service.Upload(c.UserContext(), table, specs)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	}

	var buf bytes.Buffer
	result, err := h.service.Export(c.UserContext(), table, specs, &buf)
	if err != nil {
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, excel.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, result.Table))
	return c.Send(buf.Bytes())
}

// fail maps service errors to status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var (
		fre  *excel.FieldResolutionError
		cell *excel.CellError
	)

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidTable), errors.Is(err, ErrTooManyColumns), errors.As(err, &fre):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrTableNotFound), errors.Is(err, ErrRowNotFound), errors.Is(err, pagination.ErrInvalidPage):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrStorageDisabled):
		status = fiber.StatusServiceUnavailable
	}

	l := logger.WithRayID(h.logger, c)
	if status == fiber.StatusInternalServerError || errors.As(err, &cell) {
		l.Error("Table request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		l.Debug("Table request rejected", zap.String("path", c.Path()), zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
