// File: store/admin.go
package store

import (
	"context"

	"snackmart-backend/models"
)

// GetAdminByUsername mengambil admin berdasarkan username.
func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin menyimpan admin baru. Hanya dipakai script provisioning.
func (s *Store) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	return s.db.WithContext(ctx).Create(admin).Error
}
