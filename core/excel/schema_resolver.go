package excel

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	nullDecimalType = reflect.TypeOf(decimal.NullDecimal{})
)

// SchemaResolver resolves field paths against a GORM model.
//
// A segment matches a field by Go name (case-insensitive) or column name.
// Labels come from the `label` struct tag, falling back to the column name.
type SchemaResolver struct {
	schema *schema.Schema
	namer  schema.Namer
}

// NewSchemaResolver parses model (a struct or pointer to struct) with namer.
// A nil namer uses GORM's default naming strategy.
func NewSchemaResolver(model any, namer schema.Namer) (*SchemaResolver, error) {
	if namer == nil {
		namer = schema.NamingStrategy{}
	}
	sch, err := schema.Parse(model, &sync.Map{}, namer)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
	}
	return &SchemaResolver{schema: sch, namer: namer}, nil
}

// ResolverFor parses model with the naming strategy configured on db.
func ResolverFor(db *gorm.DB, model any) (*SchemaResolver, error) {
	return NewSchemaResolver(model, db.NamingStrategy)
}

// ModelType returns the struct type records must have.
func (r *SchemaResolver) ModelType() reflect.Type {
	return r.schema.ModelType
}

// Resolve implements FieldResolver.
func (r *SchemaResolver) Resolve(path string) (*Field, error) {
	segments := strings.Split(path, ".")
	current := r.schema

	chain := make([]*schema.Field, 0, len(segments))
	labels := make([]string, 0, len(segments))
	relations := make([]string, 0, len(segments)-1)

	for i, seg := range segments {
		if seg == "" {
			return nil, &FieldResolutionError{Path: path, Segment: seg, Reason: "is empty"}
		}
		f := lookupField(current, seg)
		if f == nil {
			return nil, &FieldResolutionError{Path: path, Segment: seg, Reason: fmt.Sprintf("does not exist on %s", current.Name)}
		}

		rel, isRelation := current.Relationships.Relations[f.Name]
		last := i == len(segments)-1
		switch {
		case isRelation && last:
			return nil, &FieldResolutionError{Path: path, Segment: seg, Reason: "is a relation, not a value"}
		case isRelation:
			if rel.Type != schema.BelongsTo && rel.Type != schema.HasOne {
				return nil, &FieldResolutionError{Path: path, Segment: seg, Reason: fmt.Sprintf("is a %s relation and cannot be traversed", rel.Type)}
			}
			relations = append(relations, f.Name)
			labels = append(labels, r.labelOf(current, f))
			chain = append(chain, f)
			current = rel.FieldSchema
		case !last:
			return nil, &FieldResolutionError{Path: path, Segment: seg, Reason: "is not a relation"}
		default:
			labels = append(labels, r.labelOf(current, f))
			chain = append(chain, f)
		}
	}

	leaf := chain[len(chain)-1]
	semantic, precision := semanticOf(leaf)

	return &Field{
		Path:      path,
		Label:     PrettyLabel(labels),
		Semantic:  semantic,
		Precision: precision,
		Preload:   strings.Join(relations, "."),
		Value:     r.accessor(path, segments, chain),
	}, nil
}

func lookupField(sch *schema.Schema, seg string) *schema.Field {
	if f, ok := sch.FieldsByDBName[seg]; ok {
		return f
	}
	for _, f := range sch.Fields {
		if strings.EqualFold(f.Name, seg) {
			return f
		}
	}
	return nil
}

func (r *SchemaResolver) labelOf(sch *schema.Schema, f *schema.Field) string {
	if label := f.Tag.Get("label"); label != "" {
		return label
	}
	if f.DBName != "" {
		return f.DBName
	}
	return r.namer.ColumnName(sch.Table, f.Name)
}

// accessor builds the value reader for a resolved chain. Records must be the
// model struct or a pointer to it; a nil or zero relation along the way is a
// missing attribute.
func (r *SchemaResolver) accessor(path string, segments []string, chain []*schema.Field) Accessor {
	modelType := r.schema.ModelType
	ctx := context.Background()

	return func(record any) (any, error) {
		rv := reflect.ValueOf(record)
		for rv.Kind() == reflect.Ptr {
			if rv.IsNil() {
				return nil, &FieldResolutionError{Path: path, Reason: "record is nil"}
			}
			rv = rv.Elem()
		}
		if rv.Type() != modelType {
			return nil, &FieldResolutionError{Path: path, Reason: fmt.Sprintf("record is %s, want %s", rv.Type(), modelType)}
		}

		for i, f := range chain {
			fv := f.ReflectValueOf(ctx, rv)
			if i == len(chain)-1 {
				return indirectValue(fv), nil
			}
			for fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					return nil, &FieldResolutionError{Path: path, Segment: segments[i], Reason: "is missing on record"}
				}
				fv = fv.Elem()
			}
			// Unloaded value relations, and preloads of a dangling foreign
			// key, leave the zero struct behind.
			if fv.Kind() == reflect.Struct && fv.IsZero() {
				return nil, &FieldResolutionError{Path: path, Segment: segments[i], Reason: "is missing on record"}
			}
			rv = fv
		}
		return nil, &FieldResolutionError{Path: path, Reason: "has no segments"}
	}
}

func indirectValue(v reflect.Value) any {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}

// semanticOf classifies a model field. An explicit `type` tag wins, then
// decimal types, then GORM's data type. Float fields with a precision are
// stored as fixed-point columns, so they export as decimals.
func semanticOf(f *schema.Field) (SemanticType, int) {
	if declared := f.TagSettings["TYPE"]; declared != "" {
		if s, scale := SemanticFromSQLType(declared); s != SemanticUnknown {
			if s == SemanticDecimal && scale == 0 {
				scale = f.Scale
			}
			return s, scale
		}
	}

	ft := f.IndirectFieldType
	if ft == decimalType || ft == nullDecimalType {
		return SemanticDecimal, f.Scale
	}

	switch f.DataType {
	case schema.Time:
		return SemanticDateTime, 0
	case schema.Float:
		if f.Precision > 0 {
			return SemanticDecimal, f.Scale
		}
		return SemanticFloat, 0
	case schema.Int, schema.Uint:
		return SemanticInteger, 0
	case schema.Bool:
		return SemanticBoolean, 0
	case schema.String:
		return SemanticString, 0
	case schema.Bytes:
		return SemanticBinary, 0
	default:
		return SemanticUnknown, 0
	}
}
