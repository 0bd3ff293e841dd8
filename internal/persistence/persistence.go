package persistence

import (
	"github.com/davidmrt/promptforge/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the data store and migrates the schema. A postgres DSN
// selects the postgres driver; an empty DSN falls back to a local sqlite
// file.
func Connect(dsn string, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})

	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&domain.User{}, &domain.SavedPrompt{})

	if err != nil {
		return nil, err
	}

	return db, nil
}
