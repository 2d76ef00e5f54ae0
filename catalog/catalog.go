package catalog

import (
	"sort"
	"sync/atomic"

	"github.com/curtisnewbie/dating/util/errs"
	"golang.org/x/text/language"
)

var (
	ErrMissingFormat = errs.NewErrfCode(errs.ErrCodeMissingFormat, "Missing Format")
	ErrUnknownLocale = errs.NewErrfCode(errs.ErrCodeUnknownLocale, "Unknown Locale")
)

// Source of locale patterns.
//
// Patterns are Go reference layouts, e.g., "01/02/2006 03:04pm".
type Catalog interface {
	// Lookup pattern for the format key, fails with ErrMissingFormat if the key is not defined for the category.
	LookupPattern(cat Category, key string) (string, error)
}

// Catalog that can list its format keys.
type Lister interface {
	Formats(cat Category) []string
}

// Adapt a func to Catalog.
type CatalogFunc func(cat Category, key string) (string, error)

func (f CatalogFunc) LookupPattern(cat Category, key string) (string, error) {
	return f(cat, key)
}

func missingFormat(cat Category, key string) error {
	return ErrMissingFormat.WithInternalMsg("no pattern for '%v.formats.%v'", cat, key)
}

// Patterns of a single locale, category -> format key -> pattern.
type Table map[Category]map[string]string

func (t Table) Put(cat Category, key string, pattern string) {
	m, ok := t[cat]
	if !ok {
		m = map[string]string{}
		t[cat] = m
	}
	m[key] = pattern
}

func (t Table) Get(cat Category, key string) (string, bool) {
	p, ok := t[cat][key]
	return p, ok
}

func (t Table) LookupPattern(cat Category, key string) (string, error) {
	if p, ok := t.Get(cat, key); ok {
		return p, nil
	}
	return "", missingFormat(cat, key)
}

func (t Table) Formats(cat Category) []string {
	keys := make([]string, 0, len(t[cat]))
	for k := range t[cat] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type holder struct {
	c Catalog
}

var defCatalog atomic.Pointer[holder]

func init() {
	defCatalog.Store(&holder{c: Builtin()})
}

// Process-wide default catalog, initially [Builtin].
func Default() Catalog {
	return defCatalog.Load().c
}

// Replace the process-wide default catalog, nil restores [Builtin].
func SetDefault(c Catalog) {
	if c == nil {
		c = Builtin()
	}
	defCatalog.Store(&holder{c: c})
}

type ambientCatalog struct{}

func (ambientCatalog) LookupPattern(cat Category, key string) (string, error) {
	return Default().LookupPattern(cat, key)
}

func (ambientCatalog) Formats(cat Category) []string {
	if l, ok := Default().(Lister); ok {
		return l.Formats(cat)
	}
	return nil
}

// Catalog that delegates to whatever [Default] returns at lookup time.
func Ambient() Catalog {
	return ambientCatalog{}
}

// Catalog with a switchable current locale, e.g., [Locales] and [FileCatalog].
type LocaleSwitcher interface {
	SetLocale(locale string) error
	Locale() language.Tag
}
