// File: store/product.go
package store

import (
	"context"

	"snackmart-backend/models"
)

// CreateProduct menyimpan produk baru.
func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Create(p).Error
}

// ListProducts mengambil semua produk, terbaru lebih dulu.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

// ListProductsWithHighlight mengambil semua produk beserta record
// unggulannya (kalau ada), terbaru lebih dulu. Dipakai tabel admin.
func (s *Store) ListProductsWithHighlight(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.WithContext(ctx).
		Preload("Highlighted").
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// GetProduct mengambil satu produk berdasarkan ID.
// Mengembalikan gorm.ErrRecordNotFound kalau tidak ada.
func (s *Store) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct menerapkan field yang diberikan ke produk dengan ID tersebut
// dan mengembalikan hasil akhirnya.
func (s *Store) UpdateProduct(ctx context.Context, id uint, fields map[string]interface{}) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&product).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return &product, nil
}

// DeleteProduct menghapus produk berdasarkan ID.
func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&product).Error
}

// Stats menghitung statistik aplikasi: jumlah produk, banner, unggulan,
// dan total nilai stok (harga x stok).
func (s *Store) Stats(ctx context.Context) (*models.Stats, error) {
	stats := models.Stats{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Banner{}).Count(&stats.TotalBanners).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.HighlightedProduct{}).Count(&stats.TotalHighlighted).Error; err != nil {
		return nil, err
	}

	var total *float64
	if err := db.Model(&models.Product{}).
		Select("SUM(price * stock)").
		Scan(&total).Error; err != nil {
		return nil, err
	}
	if total != nil {
		stats.TotalValue = *total
	}
	return &stats, nil
}
