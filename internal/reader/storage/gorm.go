package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is one row of the reader's key-value table.
type kvEntry struct {
	Key       string `gorm:"column:kv_key;primaryKey;size:255"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "reader_kv" }

// GormStore persists values in a SQLite file through gorm. Keys are stored
// under prefix.
type GormStore struct {
	db     *gorm.DB
	prefix string
}

// OpenSQLite opens (or creates) the SQLite file at path and migrates the
// key-value table.
func OpenSQLite(path, prefix string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return NewGormStore(db, prefix)
}

func NewGormStore(db *gorm.DB, prefix string) (*GormStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate reader_kv: %w", err)
	}
	return &GormStore{db: db, prefix: prefix}, nil
}

func (s *GormStore) key(k string) string {
	return s.prefix + k
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).Where("kv_key = ?", s.key(key)).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := kvEntry{Key: s.key(key), Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
