package excel

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"
)

// RecordSource is an ordered, possibly lazy, sequence of records.
// Each visits every record exactly once, in order, stopping at the first error.
type RecordSource interface {
	Each(fn func(record any) error) error
}

// Preloader is implemented by sources that can load related records up front.
// The exporter passes the relation chains its dotted paths traverse.
type Preloader interface {
	WithPreloads(relations []string) RecordSource
}

// SliceSource iterates an in-memory slice.
type SliceSource[T any] struct {
	records []T
}

// SliceOf wraps records as a RecordSource.
func SliceOf[T any](records []T) SliceSource[T] {
	return SliceSource[T]{records: records}
}

// Each implements RecordSource.
func (s SliceSource[T]) Each(fn func(record any) error) error {
	for _, r := range s.records {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

// DefaultBatchSize is the number of rows GormSource loads per query.
const DefaultBatchSize = 500

// GormSource streams a GORM model in primary key order, one batch at a time.
type GormSource struct {
	db        *gorm.DB
	model     any
	preloads  []string
	batchSize int
}

// NewGormSource reads model (a pointer to struct) through db, which may carry
// filtering scopes such as Where clauses. Batches are fetched with
// "primary key > last seen", so any other ordering would skip rows: a db with
// an Order clause fails with ErrOrderedSource, and scopes passed through
// db.Scopes must not add one. A batchSize <= 0 uses DefaultBatchSize.
func NewGormSource(db *gorm.DB, model any, batchSize int) *GormSource {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &GormSource{db: db, model: model, batchSize: batchSize}
}

// WithPreloads implements Preloader.
func (s *GormSource) WithPreloads(relations []string) RecordSource {
	cp := *s
	cp.preloads = append([]string(nil), relations...)
	return &cp
}

// Each implements RecordSource. Records are pointers to the model type.
func (s *GormSource) Each(fn func(record any) error) error {
	modelType := reflect.TypeOf(s.model)
	for modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}
	if modelType.Kind() != reflect.Struct {
		return fmt.Errorf("model must be a struct, got %s", modelType)
	}
	if _, ordered := s.db.Statement.Clauses["ORDER BY"]; ordered {
		return ErrOrderedSource
	}

	batch := reflect.New(reflect.SliceOf(reflect.PointerTo(modelType)))

	tx := s.db.Model(s.model)
	for _, p := range s.preloads {
		tx = tx.Preload(p)
	}

	result := tx.FindInBatches(batch.Interface(), s.batchSize, func(_ *gorm.DB, _ int) error {
		items := batch.Elem()
		for i := 0; i < items.Len(); i++ {
			if err := fn(items.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	})
	return result.Error
}

// TableSource streams the rows of a raw table as map[string]any.
type TableSource struct {
	db    *gorm.DB
	table string
	ctx   context.Context
}

// NewTableSource reads table through db, which may carry scopes such as
// Order or Where clauses.
func NewTableSource(ctx context.Context, db *gorm.DB, table string) *TableSource {
	return &TableSource{db: db, table: table, ctx: ctx}
}

// Each implements RecordSource.
func (s *TableSource) Each(fn func(record any) error) error {
	tx := s.db.WithContext(s.ctx).Table(s.table)
	rows, err := tx.Rows()
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	defer rows.Close()

	for rows.Next() {
		row := make(map[string]any)
		if err := tx.ScanRows(rows, &row); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", s.table, err)
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}
