package dating

import (
	"database/sql"
	"reflect"
	"sync"
	"time"

	"github.com/curtisnewbie/dating/util/atom"
	"github.com/curtisnewbie/dating/util/dlog"
	"gorm.io/gorm/schema"
)

type fieldKind int

const (
	kindTime fieldKind = iota + 1
	kindTimePtr
	kindNullTime
	kindDate
	kindDatePtr
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	nullTimeType = reflect.TypeOf(sql.NullTime{})
	dateType     = reflect.TypeOf(atom.Date{})

	schemaCache  = &sync.Map{}
	namingSchema = schema.NamingStrategy{}
)

func kindOf(t reflect.Type) (fieldKind, bool) {
	switch t {
	case timeType:
		return kindTime, true
	case reflect.PointerTo(timeType):
		return kindTimePtr, true
	case nullTimeType:
		return kindNullTime, true
	case dateType:
		return kindDate, true
	case reflect.PointerTo(dateType):
		return kindDatePtr, true
	}
	return 0, false
}

// Persisted attribute backing a pair of accessors.
type attribute struct {
	name   string // name used in registration
	field  string // Go field name
	column string
	index  []int
	kind   fieldKind
}

// Parse gorm schema of the struct type, nil if typ is not a valid gorm model.
func parseSchema(typ reflect.Type) *schema.Schema {
	sch, err := schema.Parse(reflect.New(typ).Interface(), schemaCache, namingSchema)
	if err != nil {
		dlog.Debugf("%v is not a gorm model, resolving attributes by field name, %v", typ, err)
		return nil
	}
	return sch
}

// Resolve attribute by column name or Go field name.
func resolveAttribute(typ reflect.Type, sch *schema.Schema, name string) (*attribute, error) {
	fieldName, column := "", ""
	if sch != nil {
		if f := sch.LookUpField(name); f != nil {
			fieldName, column = f.Name, f.DBName
		}
	} else {
		for _, sf := range reflect.VisibleFields(typ) {
			if !sf.IsExported() || sf.Anonymous {
				continue
			}
			col := namingSchema.ColumnName("", sf.Name)
			if sf.Name == name || col == name {
				fieldName, column = sf.Name, col
				break
			}
		}
	}
	if fieldName == "" {
		return nil, ErrUnknownAttribute.WithInternalMsg("%v has no attribute '%v'", typ, name)
	}

	sf, ok := typ.FieldByName(fieldName)
	if !ok {
		return nil, ErrUnknownAttribute.WithInternalMsg("attribute '%v' of %v is not accessible", name, typ)
	}
	kind, ok := kindOf(sf.Type)
	if !ok {
		return nil, ErrUnknownAttribute.WithInternalMsg("attribute '%v' of %v is %v, not a date or time", name, typ, sf.Type)
	}
	return &attribute{name: name, field: fieldName, column: column, index: sf.Index, kind: kind}, nil
}

// Field stores a calendar date without time of day.
func (a *attribute) dateOnly() bool {
	return a.kind == kindDate || a.kind == kindDatePtr
}

// Read the stored value, rv is the addressable struct value.
//
// Values behind a nil embedded pointer are read as absent.
func (a *attribute) read(rv reflect.Value) any {
	fv, err := rv.FieldByIndexErr(a.index)
	if err != nil {
		return nil
	}
	return fv.Interface()
}

// Write normalized value, nil clears the attribute.
func (a *attribute) write(rv reflect.Value, v any) {
	fv := fieldByIndexAlloc(rv, a.index)
	switch a.kind {
	case kindTime:
		fv.Set(reflect.ValueOf(asInstant(v)))
	case kindTimePtr:
		if v == nil {
			fv.Set(reflect.Zero(fv.Type()))
			return
		}
		t := asInstant(v)
		fv.Set(reflect.ValueOf(&t))
	case kindNullTime:
		fv.Set(reflect.ValueOf(sql.NullTime{Time: asInstant(v), Valid: v != nil}))
	case kindDate:
		fv.Set(reflect.ValueOf(asDate(v)))
	case kindDatePtr:
		if v == nil {
			fv.Set(reflect.Zero(fv.Type()))
			return
		}
		d := asDate(v)
		fv.Set(reflect.ValueOf(&d))
	}
}

// Like reflect.Value.FieldByIndex but nil embedded pointers on the path are allocated.
func fieldByIndexAlloc(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}
