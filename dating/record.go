package dating

import (
	"reflect"
	"sort"
	"sync"

	"github.com/curtisnewbie/dating/catalog"
	"github.com/curtisnewbie/dating/util/errs"
	"github.com/curtisnewbie/dating/util/hash"
	"gorm.io/gorm/schema"
)

// Description of a registered accessor pair.
type AttributeBinding struct {
	Target    reflect.Type
	Attribute string
	Column    string
	Category  catalog.Category
	Format    string
	Getter    string
	Setter    string
}

func (b AttributeBinding) Names() AccessorNames {
	return AccessorNames{Getter: b.Getter, Setter: b.Setter}
}

// Text accessor pair of one attribute.
type Accessor[T any] struct {
	binding AttributeBinding
	attr    *attribute
	codec   *Codec
}

func (a *Accessor[T]) Binding() AttributeBinding {
	return a.binding
}

func (a *Accessor[T]) Codec() *Codec {
	return a.codec
}

// Read the attribute as locale text, "" if the attribute is absent.
func (a *Accessor[T]) Get(rec *T) (string, error) {
	if rec == nil {
		return "", errs.ErrIllegalArgument.WithInternalMsg("record is nil")
	}
	return a.codec.Encode(a.attr.read(reflect.ValueOf(rec).Elem()))
}

// Parse locale text and write the attribute, "" clears the attribute.
//
// The attribute is left unchanged when the text cannot be parsed.
func (a *Accessor[T]) Set(rec *T, text string) error {
	if rec == nil {
		return errs.ErrIllegalArgument.WithInternalMsg("record is nil")
	}
	v, err := a.codec.Decode(text)
	if err != nil {
		return err
	}
	a.attr.write(reflect.ValueOf(rec).Elem(), v)
	return nil
}

// Accessor table of the record type T.
//
// Accessors are registered with LocaleDate, LocaleTime and LocaleDateTime, usually at startup,
// and then used concurrently through Get and Set.
//
//	var people = dating.MustNewRecord[Person]()
//
//	func init() {
//		people.MustLocaleDate([]string{"born_on"})
//	}
//
//	text, err := people.Get(&p, "born_on_as_text")
type Record[T any] struct {
	typ     reflect.Type
	schema  *schema.Schema
	env     Env
	members map[string]string

	regMu   sync.Mutex
	getters *hash.RWMap[string, *Accessor[T]]
	setters *hash.RWMap[string, *Accessor[T]]
}

// Create accessor table for T, T must be a struct type.
//
// Attributes can be named by column name (e.g., "born_on") or Go field name (e.g., "BornOn").
func NewRecord[T any](opts ...EnvOption) (*Record[T], error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() != reflect.Struct {
		return nil, errs.ErrIllegalArgument.WithInternalMsg("%v is not a struct", typ)
	}
	sch := parseSchema(typ)
	return &Record[T]{
		typ:     typ,
		schema:  sch,
		env:     NewEnv(opts...),
		members: memberNames(typ, sch),
		getters: hash.NewRWMap[string, *Accessor[T]](),
		setters: hash.NewRWMap[string, *Accessor[T]](),
	}, nil
}

func MustNewRecord[T any](opts ...EnvOption) *Record[T] {
	r, err := NewRecord[T](opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Record[T]) Type() reflect.Type {
	return r.typ
}

// Find accessor by getter name, or by setter name.
func (r *Record[T]) Accessor(name string) (*Accessor[T], bool) {
	if a, ok := r.getters.Get(name); ok {
		return a, true
	}
	return r.setters.Get(name)
}

// Whether name is a registered getter or setter, or a method or field name of T.
func (r *Record[T]) RespondTo(name string) bool {
	if _, ok := r.Accessor(name); ok {
		return true
	}
	_, ok := r.members[name]
	return ok
}

// Invoke getter.
func (r *Record[T]) Get(rec *T, getter string) (string, error) {
	a, ok := r.getters.Get(getter)
	if !ok {
		return "", ErrUnknownAccessor.WithInternalMsg("%v has no text getter '%v'", r.typ, getter)
	}
	return a.Get(rec)
}

// Invoke setter, name is either the setter name (e.g., "born_on_as_text=") or the getter name.
func (r *Record[T]) Set(rec *T, name string, text string) error {
	a, ok := r.setters.Get(name)
	if !ok && !isSetterName(name) {
		a, ok = r.getters.Get(name)
	}
	if !ok {
		return ErrUnknownAccessor.WithInternalMsg("%v has no text setter '%v'", r.typ, name)
	}
	return a.Set(rec, text)
}

// Bindings of all registered accessors, sorted by getter name.
func (r *Record[T]) Bindings() []AttributeBinding {
	accs := r.getters.Values()
	bindings := make([]AttributeBinding, 0, len(accs))
	for _, a := range accs {
		bindings = append(bindings, a.binding)
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Getter < bindings[j].Getter })
	return bindings
}

// Bind rec to the accessor table.
func (r *Record[T]) Of(rec *T) Instance[T] {
	return Instance[T]{record: r, rec: rec}
}

// Record value bound to its accessor table.
type Instance[T any] struct {
	record *Record[T]
	rec    *T
}

func (i Instance[T]) Get(getter string) (string, error) {
	return i.record.Get(i.rec, getter)
}

func (i Instance[T]) Set(name string, text string) error {
	return i.record.Set(i.rec, name, text)
}
