package main

import (
	"github.com/curtisnewbie/dating/config"
	"github.com/curtisnewbie/dating/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
	zone       string
	locale     string
	catalog    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:     "datingctl",
		Short:   "Render and parse dates and times with locale formats",
		Version: version.Version,
		Long: `
datingctl renders stored date, time and datetime values as locale text and parses
locale text back, using the same catalog and zone configuration as the library.

Values are given and printed in canonical form:
  date       2006-01-02
  time       RFC 3339, e.g., 2012-12-30T23:30:00Z
  datetime   RFC 3339

Configuration is read from conf.yml (or --config), environment variables and .env.

EXAMPLES:
  datingctl encode datetime 2012-12-30T23:30:00Z --zone "Central Time (US & Canada)"
  datingctl decode date 12/30/2000
  datingctl decode time 4:25pm --format short --zone America/Denver
  datingctl formats date --locale en-GB
  datingctl zones
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			_ = godotenv.Load()
			_, err := config.Bootstrap(f.bootstrapArgs())
			return err
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("datingctl {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configFile, "config", "c", "", "Config file, conf.yml in working directory if present")
	pf.StringVarP(&f.zone, "zone", "z", "", "Zone of time and datetime values, e.g., 'Central Time (US & Canada)'")
	pf.StringVarP(&f.locale, "locale", "l", "", "Catalog locale, e.g., en-GB")
	pf.StringVar(&f.catalog, "catalog", "", "Locale file merged over the builtin formats")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level")

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newFormatsCmd(), newZonesCmd())
	return root
}

// Flags as KEY=VALUE args, which overwrite config file and environment.
func (f *rootFlags) bootstrapArgs() []string {
	var args []string
	add := func(key string, val string) {
		if val != "" {
			args = append(args, key+"="+val)
		}
	}
	add("configFile", f.configFile)
	add(config.PropZone, f.zone)
	add(config.PropLocale, f.locale)
	add(config.PropCatalogFile, f.catalog)
	add(config.PropLoggingLevel, f.logLevel)
	if f.catalog != "" {
		// one shot, nothing to watch
		args = append(args, config.PropCatalogWatch+"=false")
	}
	return args
}
