package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Snapshot is one persisted key/value row.
type Snapshot struct {
	ID    uint   `gorm:"primarykey"`
	Key   string `gorm:"uniqueIndex;not null"`
	Value string
}

// SQLiteProvider stores snapshots in a local SQLite database.
type SQLiteProvider struct {
	db *gorm.DB
}

func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteProvider{db: db}, nil
}

func (p *SQLiteProvider) Load(key string) (string, bool, error) {
	var snapshot Snapshot
	err := p.db.Where("key = ?", key).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return snapshot.Value, true, nil
}

func (p *SQLiteProvider) Save(key, value string) error {
	var snapshot Snapshot
	result := p.db.Where("key = ?", key).First(&snapshot)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		snapshot = Snapshot{Key: key, Value: value}
		return p.db.Create(&snapshot).Error
	}
	if result.Error != nil {
		return result.Error
	}

	snapshot.Value = value
	return p.db.Save(&snapshot).Error
}

// Ping reports whether the underlying database is reachable, for the
// health endpoint.
func (p *SQLiteProvider) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the underlying database handle.
func (p *SQLiteProvider) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
