package model

import "gorm.io/gorm"

// AutoMigrate creates or updates every table. Run at startup when
// database.auto-migrate is enabled.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		Event{},
		Club{},
		Volunteering{},
		Reservation{},
		History{},
		User{},
	)
}
