package repo

import "gorm.io/gorm"

// instant wraps a timestamp column or placeholder so that, on SQLite, it
// compares and sorts by point in time. SQLite keeps timestamps as text, and
// rows seeded out of band may carry any UTC offset.
func instant(db *gorm.DB, expr string) string {
	if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
		return "julianday(" + expr + ")"
	}
	return expr
}
