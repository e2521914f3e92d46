package tenant

import "gorm.io/gorm"

func Scope(agencyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("agency_id = ?", agencyID)
	}
}

// TableScope qualifies the column for queries that join several agency-owned tables.
func TableScope(table, agencyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".agency_id = ?", agencyID)
	}
}
