package models

import "time"

// Admin mendefinisikan struktur untuk pengguna admin.
// Akun admin hanya dibuat lewat script provisioning (cmd/createadmin),
// aplikasi tidak pernah mengubah atau menghapusnya.
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:120"`
	Password  string    `json:"-" gorm:"size:255"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest mendefinisikan struktur untuk permintaan login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
