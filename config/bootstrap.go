package config

import (
	"os"

	"github.com/curtisnewbie/dating/catalog"
	"github.com/curtisnewbie/dating/util/dlog"
	"github.com/curtisnewbie/dating/util/errs"
	"github.com/curtisnewbie/dating/zone"
)

// Load configuration and apply it to logging, zone and format catalog.
//
// The config file is given by "configFile=/path/to/conf.yml", 'conf.yml' is loaded when present.
// Props can be overwritten by environment variables and by "KEY=VALUE" args.
func Bootstrap(args []string) (*AppConfig, error) {
	c := NewAppConfig()

	path, explicit := GuessConfigFilePath(args)
	if explicit {
		if err := c.LoadConfigFromFile(path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(path); err == nil {
		if err := c.LoadConfigFromFile(path); err != nil {
			return nil, err
		}
	}
	c.OverwriteConf(args)

	if err := c.Apply(); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply loaded props.
func (a *AppConfig) Apply() error {
	if err := a.ConfigureLogging(); err != nil {
		return err
	}
	if err := a.ConfigureZone(); err != nil {
		return err
	}
	return a.ConfigureCatalog()
}

func (a *AppConfig) ConfigureLogging() error {
	if a.HasProp(PropLoggingRollingFile) {
		logFile := a.GetPropStr(PropLoggingRollingFile)
		dlog.SetOutput(dlog.BuildRollingLogFileWriter(dlog.NewRollingLogFileParam{
			Filename:   logFile,
			MaxSize:    a.GetPropInt(PropLoggingRollingFileMaxSize), // megabytes
			MaxAge:     a.GetPropInt(PropLoggingRollingFileMaxAge),  // days
			MaxBackups: a.GetPropInt(PropLoggingRollingFileMaxBackups),
		}))
	}

	level := a.GetPropStr(PropLoggingLevel)
	if !dlog.SetLogLevel(level) {
		return errs.ErrIllegalArgument.WithInternalMsg("invalid log level '%v'", level)
	}
	return nil
}

func (a *AppConfig) ConfigureZone() error {
	name := a.GetPropStr(PropZone)
	if err := zone.SetCurrentName(name); err != nil {
		return err
	}
	dlog.Debugf("Current zone: %v", zone.Current())
	return nil
}

// Open the locale file (if any) as the default catalog and switch locale.
func (a *AppConfig) ConfigureCatalog() error {
	if file := a.GetPropStr(PropCatalogFile); file != "" {
		fc, err := catalog.OpenFile(file, a.GetPropBool(PropCatalogWatch))
		if err != nil {
			return err
		}
		catalog.SetDefault(fc)
	}

	locale := a.GetPropStr(PropLocale)
	if locale == "" {
		return nil
	}
	ls, ok := catalog.Default().(catalog.LocaleSwitcher)
	if !ok {
		dlog.Warnf("Catalog %T does not support locales, '%v' is ignored", catalog.Default(), locale)
		return nil
	}
	if err := ls.SetLocale(locale); err != nil {
		return err
	}
	dlog.Infof("Catalog locale: %v", ls.Locale())
	return nil
}
