package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gallery/internal/model"
)

// Open returns a connected GORM DB instance for driver ("mysql" or "postgres").
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql", "":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

// Models lists every persisted model in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.Artist{},
		&model.Artwork{},
		&model.Exhibition{},
		&model.ExhibitionRegistration{},
		&model.Order{},
		&model.OrderItem{},
		&model.ContactMessage{},
		&model.NewsletterSubscription{},
	}
}

// Migrate creates or updates the schema. With reset, every table is dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		tables := append([]interface{}{"exhibition_artists", "exhibition_artworks"}, Models()...)
		if err := db.Migrator().DropTable(tables...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
