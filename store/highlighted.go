// File: store/highlighted.go
package store

import (
	"context"
	"time"

	"snackmart-backend/models"
)

// CreateHighlight menyimpan record unggulan baru. Kalau produknya sudah
// punya unggulan, unique index di product_id membuat database menolak
// insert dan GORM mengembalikan gorm.ErrDuplicatedKey.
func (s *Store) CreateHighlight(ctx context.Context, h *models.HighlightedProduct) error {
	return s.db.WithContext(ctx).Create(h).Error
}

// GetHighlight mengambil satu record unggulan berdasarkan ID.
func (s *Store) GetHighlight(ctx context.Context, id uint) (*models.HighlightedProduct, error) {
	var highlight models.HighlightedProduct
	if err := s.db.WithContext(ctx).First(&highlight, id).Error; err != nil {
		return nil, err
	}
	return &highlight, nil
}

// HighlightExists memeriksa apakah produk sudah punya record unggulan,
// aktif maupun tidak.
func (s *Store) HighlightExists(ctx context.Context, productID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.HighlightedProduct{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count > 0, err
}

// UpdateHighlight menerapkan field yang diberikan ke record unggulan.
// Field yang tidak ada di map dibiarkan apa adanya.
func (s *Store) UpdateHighlight(ctx context.Context, id uint, fields map[string]interface{}) (*models.HighlightedProduct, error) {
	var highlight models.HighlightedProduct
	if err := s.db.WithContext(ctx).First(&highlight, id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&highlight).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &highlight, nil
}

// DeleteHighlight menghapus record unggulan berdasarkan ID.
func (s *Store) DeleteHighlight(ctx context.Context, id uint) error {
	var highlight models.HighlightedProduct
	if err := s.db.WithContext(ctx).First(&highlight, id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&highlight).Error
}

// ListHighlights mengambil semua record unggulan beserta produknya.
// Dipakai layar admin, tanpa filter aktif.
func (s *Store) ListHighlights(ctx context.Context) ([]models.HighlightedProduct, error) {
	highlights := []models.HighlightedProduct{}
	err := s.db.WithContext(ctx).
		Preload("Product").
		Order("priority ASC, id ASC").
		Find(&highlights).Error
	return highlights, err
}

// ListActiveHighlights mengambil unggulan yang aktif dan belum
// kedaluwarsa pada waktu now, diurutkan prioritas menaik lalu urutan
// insert. end_date yang sudah lewat dikeluarkan di sini walaupun
// is_active masih true.
func (s *Store) ListActiveHighlights(ctx context.Context, now time.Time) ([]models.HighlightedProduct, error) {
	highlights := []models.HighlightedProduct{}
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("is_active = ? AND (end_date IS NULL OR end_date > ?)", true, now).
		Order("priority ASC, id ASC").
		Find(&highlights).Error
	return highlights, err
}
