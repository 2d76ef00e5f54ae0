package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgKeyVal(t *testing.T) {
	m := ArgKeyVal([]string{"dating.zone=UTC", "--flag", "a=1", "a=2", " b = x=y "})
	assert.Equal(t, []string{"UTC"}, m["dating.zone"])
	assert.Equal(t, []string{"1", "2"}, m["a"])
	assert.Equal(t, []string{"x=y"}, m["b"])
	assert.NotContains(t, m, "--flag")
}

func TestGuessConfigFilePath(t *testing.T) {
	p, explicit := GuessConfigFilePath([]string{"configFile=/etc/dating.yml", "--someflag"})
	assert.Equal(t, "/etc/dating.yml", p)
	assert.True(t, explicit)

	p, explicit = GuessConfigFilePath([]string{"--someflag"})
	assert.Equal(t, "conf.yml", p)
	assert.False(t, explicit)
}

func TestDefaultProps(t *testing.T) {
	c := NewAppConfig()
	assert.Equal(t, "UTC", c.GetPropStr(PropZone))
	assert.Equal(t, "en", c.GetPropStr(PropLocale))
	assert.True(t, c.GetPropBool(PropCatalogWatch))
	assert.Equal(t, 50, c.GetPropInt(PropLoggingRollingFileMaxSize))
	assert.False(t, c.HasProp(PropCatalogFile))
}

func TestLoadConfigFromStr(t *testing.T) {
	c := NewAppConfig()
	assert.True(t, c.GetPropBool(PropCatalogWatch))

	err := c.LoadConfigFromStr(`
dating:
  zone: America/Chicago
  catalog:
    watch: false
`)
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", c.GetPropStr(PropZone))
	assert.False(t, c.GetPropBool(PropCatalogWatch))
	assert.Equal(t, "en", c.GetPropStr(PropLocale))

	c.SetProp(PropCatalogWatch, true)
	assert.True(t, c.GetPropBool(PropCatalogWatch))

	err = c.LoadConfigFromStr("dating: [")
	assert.True(t, errors.Is(err, ErrConfigLoad))
}

func TestLoadConfigFromFile(t *testing.T) {
	c := NewAppConfig()
	err := c.LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.True(t, errors.Is(err, ErrConfigLoad))

	path := filepath.Join(t.TempDir(), "conf.yml")
	require.NoError(t, os.WriteFile(path, []byte("dating:\n  locale: de\n"), 0o644))
	require.NoError(t, c.LoadConfigFromFile(path))
	assert.Equal(t, "de", c.GetPropStr(PropLocale))
}

func TestResolveArg(t *testing.T) {
	t.Setenv("DATING_TEST_LOCALE", "en-GB")

	c := NewAppConfig()
	c.SetProp(PropLocale, "${DATING_TEST_LOCALE}")
	assert.Equal(t, "en-GB", c.GetPropStr(PropLocale))

	c.SetProp("locale.fallback", "de")
	assert.Equal(t, "de/x", c.ResolveArg("${locale.fallback}/x"))
	assert.Equal(t, "${DATING_TEST_NOT_SET}", c.ResolveArg("${DATING_TEST_NOT_SET}"))
}

func TestOverwriteConf(t *testing.T) {
	c := NewAppConfig()
	c.OverwriteConf([]string{"dating.zone=Europe/Berlin", "logging.level=debug"})
	assert.Equal(t, "Europe/Berlin", c.GetPropStr(PropZone))
	assert.Equal(t, "debug", c.GetPropStr(PropLoggingLevel))
}
