package models

import (
	"fmt"
	"time"
)

// HighlightedProduct mendefinisikan struktur untuk produk unggulan.
// Unique index di ProductID menjamin satu produk maksimal punya satu
// record unggulan; pelanggaran muncul sebagai duplicated-key dari database.
type HighlightedProduct struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	ProductID uint       `json:"productId" gorm:"uniqueIndex;not null"`
	Product   Product    `json:"-" gorm:"foreignKey:ProductID"`
	Priority  int        `json:"priority" gorm:"default:0"`
	IsActive  bool       `json:"isActive"`
	EndDate   *time.Time `json:"endDate"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Expired memeriksa apakah masa tayang unggulan sudah lewat pada waktu now.
// Status kedaluwarsa dihitung saat dibaca, tidak pernah disimpan.
func (h *HighlightedProduct) Expired(now time.Time) bool {
	return h.EndDate != nil && h.EndDate.Before(now)
}

// HighlightInput mendefinisikan struktur untuk pembuatan unggulan baru.
type HighlightInput struct {
	ProductID uint       `json:"productId"`
	Priority  *int       `json:"priority"`
	IsActive  *bool      `json:"isActive"`
	EndDate   *time.Time `json:"endDate"`
}

// HighlightUpdate mendefinisikan struktur untuk pembaruan unggulan.
// Field yang tidak dikirim dibiarkan apa adanya (partial update).
type HighlightUpdate struct {
	Priority *int       `json:"priority"`
	IsActive *bool      `json:"isActive"`
	EndDate  *time.Time `json:"endDate"`
}

// HighlightSummary mendefinisikan ringkasan unggulan yang dilampirkan
// ke setiap produk di tabel admin.
type HighlightSummary struct {
	ID       uint `json:"id"`
	IsActive bool `json:"isActive"`
}

// FeaturedProduct mendefinisikan bentuk publik hasil proyeksi unggulan
// aktif yang digabung dengan produknya.
type FeaturedProduct struct {
	ID          uint       `json:"id"`
	ProductID   uint       `json:"productId"`
	Priority    int        `json:"priority"`
	EndDate     *time.Time `json:"endDate"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	ImageURL    string     `json:"imageUrl"`
}

// DefaultProductImage mengembalikan path gambar bawaan untuk produk
// yang belum punya imageUrl.
func DefaultProductImage(productID uint) string {
	return fmt.Sprintf("/images/products/%d.jpg", productID)
}
