package sqlite

import "gorm.io/gorm"

// Create or update tables of the record types, returns the first error.
func Migrate(db *gorm.DB, models ...any) error {
	return db.AutoMigrate(models...)
}

func TableHasColumn(table string, column string, d *gorm.DB) (ok bool, err error) {
	var c int
	err = d.Raw(`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&c).Error
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// Declared type of the column, e.g., "date" or "datetime", "" if the column does not exist.
func ColumnType(table string, column string, d *gorm.DB) (string, error) {
	var typ string
	err := d.Raw(`SELECT type FROM pragma_table_info(?) WHERE name = ?`, table, column).Scan(&typ).Error
	return typ, err
}
