package database

import (
	"fmt"
	"time"

	"kos-manager/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormDB wraps the single shared connection to the embedded database.
// It is constructed once at startup and handed to each repository.
type GormDB struct {
	db *gorm.DB
}

// NewGormDB opens (or creates) the sqlite database file at path.
// Pass ":memory:" for an ephemeral database.
func NewGormDB(path string) (*GormDB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// Referential integrity is off by default in sqlite.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Single handle: the embedded store serializes writes anyway, and a
	// pool of one keeps PRAGMA state consistent across all queries.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &GormDB{db: db}, nil
}

// NewGormDBFromDB creates a GormDB wrapper from an existing gorm.DB instance
func NewGormDBFromDB(db *gorm.DB) *GormDB {
	return &GormDB{db: db}
}

// DB returns the underlying gorm.DB instance
func (gdb *GormDB) DB() *gorm.DB {
	return gdb.db
}

func (gdb *GormDB) Close() error {
	sqlDB, err := gdb.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InitSchema creates the four tables and their indexes if they do not
// exist yet. Safe to run on every start.
func (gdb *GormDB) InitSchema() error {
	return gdb.db.AutoMigrate(
		&models.Kosan{},
		&models.Kamar{},
		&models.Penghuni{},
		&models.PenghuniKamar{},
	)
}

// DropSchema removes all tables. Development resets only; nothing calls
// this automatically.
func (gdb *GormDB) DropSchema() error {
	return gdb.db.Migrator().DropTable(
		&models.PenghuniKamar{},
		&models.Kamar{},
		&models.Penghuni{},
		&models.Kosan{},
	)
}
