package store

import "gorm.io/gorm"

func isSQLite(db *gorm.DB) bool {
	return db.Dialector.Name() == "sqlite"
}

// MonthOfYear returns an integer 1-12 expression for col.
func MonthOfYear(db *gorm.DB, col string) string {
	if isSQLite(db) {
		return "CAST(strftime('%m', " + col + ") AS INTEGER)"
	}
	return "CAST(EXTRACT(MONTH FROM " + col + ") AS INTEGER)"
}

// YearMonth returns a "YYYY-MM" text expression for col.
func YearMonth(db *gorm.DB, col string) string {
	if isSQLite(db) {
		return "strftime('%Y-%m', " + col + ")"
	}
	return "to_char(" + col + ", 'YYYY-MM')"
}
