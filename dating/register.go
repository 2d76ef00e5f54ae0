package dating

import (
	"strings"

	"github.com/curtisnewbie/dating/catalog"
	"github.com/curtisnewbie/dating/util/dlog"
)

// Register text accessors of date attributes.
//
// With default options, attribute "born_on" gets getter "born_on_as_text" and setter "born_on_as_text=".
func (r *Record[T]) LocaleDate(attrs []string, opts ...Option) error {
	return r.register(catalog.Date, attrs, opts)
}

// Register text accessors of time-of-day attributes.
func (r *Record[T]) LocaleTime(attrs []string, opts ...Option) error {
	return r.register(catalog.Time, attrs, opts)
}

// Register text accessors of datetime attributes.
func (r *Record[T]) LocaleDateTime(attrs []string, opts ...Option) error {
	return r.register(catalog.DateTime, attrs, opts)
}

func (r *Record[T]) MustLocaleDate(attrs []string, opts ...Option) {
	must(r.LocaleDate(attrs, opts...))
}

func (r *Record[T]) MustLocaleTime(attrs []string, opts ...Option) {
	must(r.LocaleTime(attrs, opts...))
}

func (r *Record[T]) MustLocaleDateTime(attrs []string, opts ...Option) {
	must(r.LocaleDateTime(attrs, opts...))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Every attribute is validated before any accessor is attached, a failed call leaves the table unchanged.
func (r *Record[T]) register(cat catalog.Category, attrs []string, opts []Option) error {
	o := NewFormatOptions(opts...)
	if err := ValidateOptions(o, len(attrs)); err != nil {
		return err
	}
	if len(attrs) < 1 {
		return nil
	}

	r.regMu.Lock()
	defer r.regMu.Unlock()

	pending := make(map[string]string, len(attrs)*2)
	taken := func(name string) (string, bool) {
		if _, ok := r.Accessor(name); ok {
			return "registered accessor", true
		}
		if owner, ok := r.members[name]; ok {
			return owner, true
		}
		if attr, ok := pending[name]; ok {
			return "accessor of '" + attr + "'", true
		}
		return "", false
	}

	accs := make([]*Accessor[T], 0, len(attrs))
	for _, name := range attrs {
		name = strings.TrimSpace(name)
		names, err := ResolveNames(name, o, len(attrs))
		if err != nil {
			return err
		}
		attr, err := resolveAttribute(r.typ, r.schema, name)
		if err != nil {
			return err
		}
		if cat.ZoneAware() && attr.dateOnly() {
			return ErrUnknownAttribute.WithInternalMsg("attribute '%v' of %v is a date-only field, it cannot hold a %v", name, r.typ, cat)
		}
		if err := checkCollision(name, names, taken); err != nil {
			return err
		}
		pending[names.Getter] = name
		pending[names.Setter] = name

		accs = append(accs, &Accessor[T]{
			binding: AttributeBinding{
				Target:    r.typ,
				Attribute: name,
				Column:    attr.column,
				Category:  cat,
				Format:    o.Format,
				Getter:    names.Getter,
				Setter:    names.Setter,
			},
			attr:  attr,
			codec: newCodec(cat, o.Format, r.env),
		})
	}

	getters := make(map[string]*Accessor[T], len(accs))
	setters := make(map[string]*Accessor[T], len(accs))
	for _, a := range accs {
		getters[a.binding.Getter] = a
		setters[a.binding.Setter] = a
	}
	r.getters.PutAll(getters)
	r.setters.PutAll(setters)

	for _, a := range accs {
		dlog.Debugf("Bound %v accessors %v / %v on %v.%v, format: '%v'", a.binding.Category, a.binding.Getter, a.binding.Setter,
			r.typ.Name(), a.attr.field, a.binding.Format)
	}
	return nil
}
