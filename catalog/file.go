package catalog

import (
	"sync"

	"github.com/curtisnewbie/dating/util/dlog"
	"github.com/curtisnewbie/dating/util/errs"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Catalog backed by a locale file (yaml, json or toml, anything viper reads), patterns are merged over [Builtin].
//
// With watch enabled, the file is reloaded when it changes, the next conversion sees the new patterns.
// A reload that fails keeps the previous patterns.
type FileCatalog struct {
	mu      sync.RWMutex
	vp      *viper.Viper
	path    string
	locales *Locales
	locale  string // locale requested through SetLocale, re-applied after reload
}

// Open locale file.
func OpenFile(path string, watch bool) (*FileCatalog, error) {
	fc := &FileCatalog{vp: viper.New(), path: path}
	fc.vp.SetConfigFile(path)

	if err := fc.vp.ReadInConfig(); err != nil {
		return nil, errs.WrapErrf(err, "failed to read locale file '%v'", path)
	}
	l, err := fc.build()
	if err != nil {
		return nil, err
	}
	fc.locales = l
	dlog.Infof("Loaded locale file '%v', locales: %v", path, l.Available())

	if watch {
		fc.vp.OnConfigChange(func(e fsnotify.Event) {
			if err := fc.Reload(); err != nil {
				dlog.Warnf("Failed to reload locale file '%v' on %v, keep previous patterns, %v", fc.path, e.Op, err)
			}
		})
		fc.vp.WatchConfig()
		dlog.Debugf("Watching locale file '%v'", path)
	}
	return fc, nil
}

// Re-read the file and swap patterns.
func (f *FileCatalog) Reload() error {
	if err := f.vp.ReadInConfig(); err != nil {
		return errs.WrapErrf(err, "failed to read locale file '%v'", f.path)
	}
	l, err := f.build()
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locale != "" {
		if err := l.SetLocale(f.locale); err != nil {
			dlog.Warnf("Locale '%v' no longer available after reload, using '%v'", f.locale, l.Locale())
		}
	}
	f.locales = l
	dlog.Infof("Reloaded locale file '%v'", f.path)
	return nil
}

// viper lower-cases keys, language tags and format keys are case-insensitive anyway.
func (f *FileCatalog) build() (*Locales, error) {
	l := Builtin()
	for locale, sections := range f.vp.AllSettings() {
		t := Table{}
		for section, v := range cast.ToStringMap(sections) {
			cat, err := ParseCategory(section)
			if err != nil {
				continue
			}
			formats := cast.ToStringMap(v)["formats"]
			for k, p := range cast.ToStringMapString(formats) {
				t.Put(cat, k, p)
			}
		}
		if err := l.PutTable(locale, t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (f *FileCatalog) current() *Locales {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.locales
}

func (f *FileCatalog) LookupPattern(cat Category, key string) (string, error) {
	return f.current().LookupPattern(cat, key)
}

func (f *FileCatalog) Formats(cat Category) []string {
	return f.current().Formats(cat)
}

func (f *FileCatalog) SetLocale(locale string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.locales.SetLocale(locale); err != nil {
		return err
	}
	f.locale = locale
	return nil
}

func (f *FileCatalog) Locale() language.Tag {
	return f.current().Locale()
}

func (f *FileCatalog) Path() string {
	return f.path
}
