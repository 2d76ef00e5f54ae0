package config

// dating
const (

	// name of the zone used by time and datetime conversions, IANA or display name | UTC
	PropZone = "dating.zone"

	// locale of the format catalog | en
	PropLocale = "dating.locale"

	// locale file merged over the builtin formats
	PropCatalogFile = "dating.catalog.file"

	// reload the locale file when it changes | true
	PropCatalogWatch = "dating.catalog.watch"
)

// logging
const (

	// log level | info
	PropLoggingLevel = "logging.level"

	// path to rolling log file
	PropLoggingRollingFile = "logging.rolling.file"

	// max size of each log file (in mb) | 50
	PropLoggingRollingFileMaxSize = "logging.rolling.max-size"

	// max age of log files in days | 7
	PropLoggingRollingFileMaxAge = "logging.rolling.max-age"

	// max number of backup log files | 3
	PropLoggingRollingFileMaxBackups = "logging.rolling.max-backups"
)

var defaultProps = map[string]any{
	PropZone:                         "UTC",
	PropLocale:                       "en",
	PropCatalogWatch:                 true,
	PropLoggingLevel:                 "info",
	PropLoggingRollingFileMaxSize:    50,
	PropLoggingRollingFileMaxAge:     7,
	PropLoggingRollingFileMaxBackups: 3,
}
