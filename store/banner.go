// File: store/banner.go
package store

import (
	"context"

	"snackmart-backend/models"
)

// CreateBanner menyimpan banner baru.
func (s *Store) CreateBanner(ctx context.Context, b *models.Banner) error {
	return s.db.WithContext(ctx).Create(b).Error
}

// ListBanners mengambil semua banner, terbaru lebih dulu.
func (s *Store) ListBanners(ctx context.Context) ([]models.Banner, error) {
	banners := []models.Banner{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&banners).Error
	return banners, err
}

// GetBanner mengambil satu banner berdasarkan ID.
func (s *Store) GetBanner(ctx context.Context, id uint) (*models.Banner, error) {
	var banner models.Banner
	if err := s.db.WithContext(ctx).First(&banner, id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

// UpdateBanner menerapkan field yang diberikan ke banner dengan ID tersebut.
func (s *Store) UpdateBanner(ctx context.Context, id uint, fields map[string]interface{}) (*models.Banner, error) {
	var banner models.Banner
	if err := s.db.WithContext(ctx).First(&banner, id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&banner).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &banner, nil
}

// DeleteBanner menghapus banner berdasarkan ID dan mengembalikan record
// yang dihapus supaya handler bisa membersihkan gambar remote-nya.
func (s *Store) DeleteBanner(ctx context.Context, id uint) (*models.Banner, error) {
	var banner models.Banner
	if err := s.db.WithContext(ctx).First(&banner, id).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Delete(&banner).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}
