package models

import "time"

// Banner mendefinisikan struktur untuk slide carousel di halaman utama.
type Banner struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	ImageURL  string    `json:"imageUrl" gorm:"size:500;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BannerInput mendefinisikan struktur untuk pembuatan banner baru.
type BannerInput struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

// BannerUpdate mendefinisikan struktur untuk pembaruan banner.
type BannerUpdate struct {
	Title    *string `json:"title"`
	ImageURL *string `json:"imageUrl"`
}
