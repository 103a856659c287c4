package models

import "time"

// Kategori produk yang dikenal aplikasi.
const (
	CategoryOpak   = "OPAK"
	CategoryBastik = "BASTIK"
	CategoryKacang = "KACANG"
)

// Jenis kemasan produk.
const (
	ContainerToples = "TOPLES"
	ContainerBox    = "BOX"
)

// Product mendefinisikan struktur untuk produk.
type Product struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Name        string              `json:"name" gorm:"size:255;not null"`
	Description string              `json:"description"`
	Price       float64             `json:"price" gorm:"not null"`
	Stock       int                 `json:"stock" gorm:"not null"`
	Category    string              `json:"category" gorm:"size:30;not null"`
	Container   string              `json:"container" gorm:"size:30;not null"`
	ImageURL    string              `json:"imageUrl" gorm:"size:500"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Highlighted *HighlightedProduct `json:"-" gorm:"foreignKey:ProductID"`
}

// ValidCategory memeriksa apakah kategori termasuk enum yang dikenal.
func ValidCategory(c string) bool {
	return c == CategoryOpak || c == CategoryBastik || c == CategoryKacang
}

// ValidContainer memeriksa apakah kemasan termasuk enum yang dikenal.
func ValidContainer(c string) bool {
	return c == ContainerToples || c == ContainerBox
}

// ProductInput mendefinisikan struktur untuk pembuatan produk baru.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    string   `json:"category"`
	Container   string   `json:"container"`
	ImageURL    string   `json:"imageUrl"`
}

// ProductUpdate mendefinisikan struktur untuk pembaruan produk.
// Pointer dipakai supaya field yang tidak dikirim tidak ikut diubah.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Container   *string  `json:"container"`
	ImageURL    *string  `json:"imageUrl"`
}

// Stats mendefinisikan struktur untuk statistik aplikasi.
type Stats struct {
	TotalProducts    int64   `json:"totalProducts"`
	TotalBanners     int64   `json:"totalBanners"`
	TotalHighlighted int64   `json:"totalHighlighted"`
	TotalValue       float64 `json:"totalValue"`
}
