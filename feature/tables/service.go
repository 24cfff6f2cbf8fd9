package tables

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"revo-utils/core/database"
	"revo-utils/core/excel"
	"revo-utils/core/metrics"
	"revo-utils/core/pagination"
	"revo-utils/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrInvalidTable is returned for table names that are not plain identifiers.
	ErrInvalidTable = errors.New("invalid table name")
	// ErrTableNotFound is returned for tables without columns.
	ErrTableNotFound = errors.New("table not found")
	// ErrRowNotFound is returned by Row when no row has the key.
	ErrRowNotFound = errors.New("row not found")
	// ErrTooManyColumns is returned for exports wider than the configured limit.
	ErrTooManyColumns = errors.New("too many columns")
	// ErrStorageDisabled is returned by Upload when no storage client is configured.
	ErrStorageDisabled = errors.New("storage is not configured")
)

// Table describes one table.
type Table struct {
	Name       string                `json:"name"`
	PrimaryKey string                `json:"primary_key"`
	Columns    []database.ColumnInfo `json:"columns"`
}

// ExportResult summarises a finished export.
type ExportResult struct {
	Table   string   `json:"table"`
	Rows    int      `json:"rows"`
	Headers []string `json:"headers"`
	// Key and Size are set for uploaded exports.
	Key  string `json:"key,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// Service reads tables and exports them.
type Service struct {
	db      *gorm.DB
	client  storage.Client
	bucket  string
	cfg     excel.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService creates a new tables service. client may be nil when uploads are not needed.
func NewService(db *gorm.DB, client storage.Client, bucket string, cfg excel.Config, logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{
		db:      db,
		client:  client,
		bucket:  bucket,
		cfg:     cfg,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// ListTables returns the names of all tables.
func (s *Service) ListTables(ctx context.Context) ([]string, error) {
	return database.ListTables(s.db.WithContext(ctx))
}

// Describe returns the columns of table.
func (s *Service) Describe(ctx context.Context, table string) (*Table, error) {
	if !database.ValidTableName(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	columns, err := database.GetTableColumns(s.db.WithContext(ctx), table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}

	t := &Table{Name: table, Columns: columns, PrimaryKey: columns[0].Field}
	for _, c := range columns {
		if c.Key == "PRI" {
			t.PrimaryKey = c.Field
			break
		}
	}
	return t, nil
}

// ordered scopes the table in primary key order so pages and exports are stable.
func (s *Service) ordered(ctx context.Context, t *Table) *gorm.DB {
	return s.db.WithContext(ctx).Table(t.Name).Order(t.PrimaryKey)
}

// List returns one page of rows.
func (s *Service) List(ctx context.Context, table string, p pagination.Paginator, requestURL *url.URL) (*pagination.Page[map[string]any], error) {
	t, err := s.Describe(ctx, table)
	if err != nil {
		return nil, err
	}
	page, err := pagination.Paginate[map[string]any](s.ordered(ctx, t), p, requestURL)
	if err != nil {
		return nil, err
	}
	for _, row := range page.Results {
		normalizeRow(row)
	}
	return page, nil
}

// Row returns the row whose primary key equals id.
func (s *Service) Row(ctx context.Context, table, id string) (map[string]any, error) {
	t, err := s.Describe(ctx, table)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.WithContext(ctx).Table(t.Name).Where(fmt.Sprintf("%s = ?", t.PrimaryKey), id).Limit(1).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.Name, err)
	}
	found, err := database.FetchMaps(s.db, rows)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrRowNotFound, t.Name, id)
	}
	return normalizeRow(found[0]), nil
}

// Export writes table as an xlsx workbook to out. Without specs every
// column is exported at the default width; the column limit applies only to
// explicit specs.
func (s *Service) Export(ctx context.Context, table string, specs []excel.ColumnSpec, out io.Writer) (result *ExportResult, err error) {
	start := s.now()
	defer func() {
		rows := 0
		if result != nil {
			rows = result.Rows
		}
		s.metrics.RecordExport(table, rows, s.now().Sub(start), err)
	}()

	t, err := s.Describe(ctx, table)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxColumns > 0 && len(specs) > s.cfg.MaxColumns {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyColumns, len(specs), s.cfg.MaxColumns)
	}
	if len(specs) == 0 {
		for _, c := range t.Columns {
			specs = append(specs, excel.Column(c.Field, excel.DefaultColumnWidth))
		}
	}

	writer, err := excel.NewXLSXWriter(out, t.Name)
	if err != nil {
		return nil, err
	}
	source := excel.NewTableSource(ctx, s.ordered(ctx, t), t.Name)
	exporter, err := excel.New(writer, source, specs, excel.NewTableResolver(t.Name, t.Columns))
	if err != nil {
		_ = writer.Discard()
		return nil, err
	}
	if err := exporter.Output(); err != nil {
		return nil, err
	}

	s.logger.Info("Exported table", zap.String("table", t.Name), zap.Int("rows", exporter.Records()))
	return &ExportResult{Table: t.Name, Rows: exporter.Records(), Headers: exporter.Headers()}, nil
}

// Upload exports table and stores the workbook in the bucket under the
// configured prefix.
func (s *Service) Upload(ctx context.Context, table string, specs []excel.ColumnSpec) (*ExportResult, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	var buf bytes.Buffer
	result, err := s.Export(ctx, table, specs, &buf)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%s-%s.xlsx", s.cfg.UploadPrefix, result.Table, s.now().UTC().Format("20060102-150405"))
	info, err := storage.Upload(ctx, s.client, s.bucket, key, buf.Bytes(), excel.ContentType)
	if err != nil {
		return nil, err
	}

	result.Key = key
	result.Size = info.Size
	return result, nil
}

// normalizeRow turns []byte values into strings so rows encode as text.
func normalizeRow(row map[string]any) map[string]any {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return row
}
