// File: store/store.go
package store

import (
	"context"

	"gorm.io/gorm"
)

// Store membungkus handle GORM dan menyediakan operasi CRUD bertipe
// untuk semua entitas. Satu instance dibuat di main dan disuntikkan ke
// controller; tidak ada state global.
type Store struct {
	db *gorm.DB
}

// New membuat Store baru di atas handle database yang diberikan.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping memeriksa koneksi database. Dipakai health check.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
