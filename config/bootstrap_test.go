package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/curtisnewbie/dating/catalog"
	"github.com/curtisnewbie/dating/util/dlog"
	"github.com/curtisnewbie/dating/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAmbient(t *testing.T) {
	t.Cleanup(func() {
		zone.SetCurrent(time.UTC)
		catalog.SetDefault(nil)
		dlog.SetLogLevel("info")
	})
}

func TestBootstrap(t *testing.T) {
	resetAmbient(t)
	dir := t.TempDir()

	localeFile := filepath.Join(dir, "locale.yml")
	require.NoError(t, os.WriteFile(localeFile, []byte(`
en-GB:
  date:
    formats:
      default: "02 Jan 2006"
`), 0o644))

	confFile := filepath.Join(dir, "conf.yml")
	require.NoError(t, os.WriteFile(confFile, []byte(`
dating:
  zone: "Central Time (US & Canada)"
  locale: en-GB
  catalog:
    file: `+localeFile+`
    watch: false
`), 0o644))

	c, err := Bootstrap([]string{"configFile=" + confFile, "logging.level=debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", c.GetPropStr(PropLoggingLevel))
	assert.True(t, dlog.IsDebugLevel())
	assert.Equal(t, "America/Chicago", zone.Current().String())

	p, err := catalog.Default().LookupPattern(catalog.Date, "default")
	require.NoError(t, err)
	assert.Equal(t, "02 Jan 2006", p)

	// builtin en-GB pattern still there
	p, err = catalog.Default().LookupPattern(catalog.Time, "short")
	require.NoError(t, err)
	assert.Equal(t, "15:04", p)
}

func TestBootstrapErrors(t *testing.T) {
	resetAmbient(t)

	_, err := Bootstrap([]string{"configFile=" + filepath.Join(t.TempDir(), "missing.yml")})
	assert.True(t, errors.Is(err, ErrConfigLoad))

	_, err = Bootstrap([]string{"dating.zone=Nowhere/Atlantis"})
	assert.True(t, errors.Is(err, zone.ErrUnknownZone))

	_, err = Bootstrap([]string{"dating.locale=xx-unknown"})
	assert.True(t, errors.Is(err, catalog.ErrUnknownLocale))

	_, err = Bootstrap([]string{"logging.level=loud"})
	assert.Error(t, err)
}
