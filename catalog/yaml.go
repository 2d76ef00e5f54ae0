package catalog

import (
	"bytes"
	_ "embed"
	"io"
	"sort"

	"github.com/curtisnewbie/dating/util/errs"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yml
var defaultsYml []byte

type yamlSection struct {
	Formats map[string]string `yaml:"formats"`
}

// Load locale file in the i18n layout:
//
//	en:
//	  date:
//	    formats:
//	      default: "01/02/2006"
//	  datetime:
//	    formats:
//	      long: "01/02/2006 03:04pm"
//
// Sections other than date, time and datetime are ignored. Patterns are merged into l, existing keys are overwritten.
func (l *Locales) LoadYAML(r io.Reader) error {
	doc := map[string]map[string]yamlSection{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return errs.WrapErrf(err, "failed to decode locale yaml")
	}

	// sorted so the first added locale does not depend on map order
	locales := make([]string, 0, len(doc))
	for locale := range doc {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		t := Table{}
		for section, v := range doc[locale] {
			cat, err := ParseCategory(section)
			if err != nil {
				continue
			}
			for k, p := range v.Formats {
				t.Put(cat, k, p)
			}
		}
		if err := l.PutTable(locale, t); err != nil {
			return err
		}
	}
	return nil
}

// Load locales from yaml, see [Locales.LoadYAML].
func LoadYAML(defaultLocale string, r io.Reader) (*Locales, error) {
	l, err := NewLocales(defaultLocale)
	if err != nil {
		return nil, err
	}
	if err := l.LoadYAML(r); err != nil {
		return nil, err
	}
	return l, nil
}

// Builtin locales (en, en-GB, de) with en as the default locale.
//
// Each call returns a new copy that can be modified freely.
func Builtin() *Locales {
	l, err := LoadYAML("en", bytes.NewReader(defaultsYml))
	if err != nil {
		panic(errs.WrapErrf(err, "embedded defaults.yml is invalid"))
	}
	return l
}
