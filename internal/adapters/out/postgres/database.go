package postgres

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects GORM to PostgreSQL. TranslateError is on so that unique violations
// surface as gorm.ErrDuplicatedKey in the repositories.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
}
