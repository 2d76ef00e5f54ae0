package sqlite

import "github.com/curtisnewbie/dating/config"

const (

	// path to SQLite database file
	PropSqliteFile = "sqlite.file"

	// enable WAL mode | true
	PropSqliteWalEnabled = "sqlite.wal.enabled"

	// log sql statements | false
	PropSqliteLogSQL = "sqlite.log-sql"
)

func setDefProps(c *config.AppConfig) {
	if !c.HasProp(PropSqliteWalEnabled) {
		c.SetDefProp(PropSqliteWalEnabled, true)
	}
	if !c.HasProp(PropSqliteLogSQL) {
		c.SetDefProp(PropSqliteLogSQL, false)
	}
}
