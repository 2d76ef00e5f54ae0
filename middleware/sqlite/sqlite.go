package sqlite

import (
	"strings"

	"github.com/curtisnewbie/dating/config"
	"github.com/curtisnewbie/dating/util/dlog"
	"github.com/curtisnewbie/dating/util/errs"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open SQLite database configured by props.
func Open(c *config.AppConfig) (*gorm.DB, error) {
	setDefProps(c)
	path := c.GetPropStr(PropSqliteFile)
	if strings.TrimSpace(path) == "" {
		return nil, errs.ErrIllegalArgument.WithInternalMsg("'%v' is not configured", PropSqliteFile)
	}
	return NewConn(path, c.GetPropBool(PropSqliteWalEnabled), c.GetPropBool(PropSqliteLogSQL))
}

// Create new SQLite connection.
func NewConn(path string, wal bool, logSQL bool) (*gorm.DB, error) {
	dlog.Infof("Connecting to SQLite database '%s', enable WAL: %v", path, wal)

	conf := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if logSQL || dlog.IsDebugLevel() {
		conf.Logger = logger.Default.LogMode(logger.Info)
	}
	db, err := gorm.Open(sqlite.Open(path), conf)
	if err != nil {
		return nil, errs.WrapErrf(err, "failed to open SQLite")
	}

	tx, err := db.DB()
	if err != nil {
		return nil, errs.WrapErrf(err, "failed to connect SQLite")
	}

	// make sure the handle is actually connected
	if err := tx.Ping(); err != nil {
		return nil, errs.WrapErrf(err, "failed to ping SQLite")
	}
	dlog.Infof("SQLite connected: '%s'", path)

	// https://www.sqlite.org/pragma.html#pragma_journal_mode
	if wal {
		var mode string
		if err := db.Raw("PRAGMA journal_mode=WAL").Scan(&mode).Error; err != nil {
			return db, errs.WrapErrf(err, "failed to enable WAL mode")
		}
		dlog.Debugf("Enabled SQLite WAL mode, result: %v", mode)
	}
	return db, nil
}

// Close the underlying connection pool.
func Close(db *gorm.DB) error {
	tx, err := db.DB()
	if err != nil {
		return err
	}
	return tx.Close()
}
