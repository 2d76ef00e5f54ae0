package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"date", Date},
		{"Time", Time},
		{" DATETIME ", DateTime},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}

	_, err := ParseCategory("number")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Category(0).String())
	assert.True(t, DateTime.ZoneAware())
	assert.False(t, Date.ZoneAware())
}

func TestTable(t *testing.T) {
	tb := Table{}
	tb.Put(Date, "ymd", "2006-01-02")

	p, err := tb.LookupPattern(Date, "ymd")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02", p)

	_, err = tb.LookupPattern(Time, "ymd")
	assert.ErrorIs(t, err, ErrMissingFormat)
	assert.Contains(t, err.Error(), "time.formats.ymd")
}

func TestBuiltin(t *testing.T) {
	l := Builtin()
	assert.Equal(t, "en", l.Locale().String())

	p, err := l.LookupPattern(Date, "default")
	require.NoError(t, err)
	assert.Equal(t, "01/02/2006", p)

	p, err = l.LookupPattern(DateTime, "long")
	require.NoError(t, err)
	assert.Equal(t, "01/02/2006 03:04pm", p)

	p, err = l.LookupPattern(Time, "short")
	require.NoError(t, err)
	assert.Equal(t, "03:04pm", p)

	_, err = l.LookupPattern(Date, "nope")
	assert.ErrorIs(t, err, ErrMissingFormat)

	assert.Equal(t, []string{"default", "long", "ymd"}, l.Formats(Date))
}

func TestLocalesFallback(t *testing.T) {
	l := Builtin()
	require.NoError(t, l.SetLocale("en-GB"))
	assert.Equal(t, "en-GB", l.Locale().String())

	p, err := l.LookupPattern(Date, "default")
	require.NoError(t, err)
	assert.Equal(t, "02/01/2006", p)

	// en-GB has no ymd, en has
	p, err = l.LookupPattern(Date, "ymd")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02", p)

	require.NoError(t, l.SetLocale("de-AT"))
	assert.Equal(t, "de", l.Locale().String())
	p, err = l.LookupPattern(Date, "default")
	require.NoError(t, err)
	assert.Equal(t, "02.01.2006", p)
}

func TestLocalesSetLocale(t *testing.T) {
	l := Builtin()
	require.NoError(t, l.SetLocale("en-US"))
	assert.Equal(t, "en", l.Locale().String())

	err := l.SetLocale("ja")
	assert.ErrorIs(t, err, ErrUnknownLocale)
	assert.Equal(t, "en", l.Locale().String())

	err = l.SetLocale("not a locale!")
	assert.ErrorIs(t, err, ErrUnknownLocale)

	empty, err := NewLocales("en")
	require.NoError(t, err)
	assert.ErrorIs(t, empty.SetLocale("en"), ErrUnknownLocale)
}

func TestLocalesPutVisibleImmediately(t *testing.T) {
	l := Builtin()
	_, err := l.LookupPattern(Date, "compact")
	assert.ErrorIs(t, err, ErrMissingFormat)

	require.NoError(t, l.Put("en", Date, "compact", "20060102"))
	p, err := l.LookupPattern(Date, "compact")
	require.NoError(t, err)
	assert.Equal(t, "20060102", p)
}

func TestLoadYAML(t *testing.T) {
	doc := `
fr:
  date:
    abbr_day_names: [dim, lun, mar]
    formats:
      default: "02/01/2006"
  number:
    precision: 2
`
	l, err := LoadYAML("fr", strings.NewReader(doc))
	require.NoError(t, err)

	p, err := l.LookupPattern(Date, "default")
	require.NoError(t, err)
	assert.Equal(t, "02/01/2006", p)

	_, err = LoadYAML("fr", strings.NewReader("fr: [1, 2"))
	assert.Error(t, err)
}

func TestDefaultAndAmbient(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	amb := Ambient()
	p, err := amb.LookupPattern(Date, "default")
	require.NoError(t, err)
	assert.Equal(t, "01/02/2006", p)

	tb := Table{}
	tb.Put(Date, "default", "2006/01/02")
	SetDefault(tb)

	p, err = amb.LookupPattern(Date, "default")
	require.NoError(t, err)
	assert.Equal(t, "2006/01/02", p)
	assert.Equal(t, []string{"default"}, amb.(Lister).Formats(Date))
}

func TestCatalogFunc(t *testing.T) {
	var c Catalog = CatalogFunc(func(cat Category, key string) (string, error) {
		return cat.String() + ":" + key, nil
	})
	p, err := c.LookupPattern(Time, "short")
	require.NoError(t, err)
	assert.Equal(t, "time:short", p)
}

func TestFileCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locale.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
en:
  date:
    formats:
      default: "2006/01/02"
      dmy: "02-01-2006"
`), 0o644))

	fc, err := OpenFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, path, fc.Path())

	p, err := fc.LookupPattern(Date, "default")
	require.NoError(t, err)
	assert.Equal(t, "2006/01/02", p)

	// builtin patterns remain available
	p, err = fc.LookupPattern(Date, "ymd")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02", p)

	require.NoError(t, fc.SetLocale("en-GB"))
	assert.Equal(t, "en-GB", fc.Locale().String())

	require.NoError(t, os.WriteFile(path, []byte(`
en:
  date:
    formats:
      dmy: "02.01.2006"
`), 0o644))
	require.NoError(t, fc.Reload())

	p, err = fc.LookupPattern(Date, "dmy")
	require.NoError(t, err)
	assert.Equal(t, "02.01.2006", p)
	assert.Equal(t, "en-GB", fc.Locale().String())

	_, err = OpenFile(filepath.Join(t.TempDir(), "missing.yml"), false)
	assert.Error(t, err)
}
