// File: controllers/banner.controller.go
package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"snackmart-backend/models"
	"snackmart-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetBanners menangani pengambilan semua banner, terbaru lebih dulu.
// Di mode development kegagalan database diturunkan jadi list kosong
// supaya halaman utama tetap hidup tanpa database.
func (ctrl *Controller) GetBanners(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	banners, err := ctrl.Store.ListBanners(ctx)
	if err != nil {
		if ctrl.Env != "production" {
			log.Println("Banner list error (development fallback):", err)
			c.JSON(http.StatusOK, []models.Banner{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, banners)
}

// CreateBanner menangani pembuatan banner baru.
func (ctrl *Controller) CreateBanner(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.BannerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title == "" || input.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and imageUrl are required"})
		return
	}
	if !validImageURL(input.ImageURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is not a valid URL"})
		return
	}

	banner := models.Banner{Title: input.Title, ImageURL: input.ImageURL}
	if err := ctrl.Store.CreateBanner(ctx, &banner); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, banner)
}

// EditBanner menangani pembaruan banner.
func (ctrl *Controller) EditBanner(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id query parameter is required"})
		return
	}

	var input models.BannerUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		if *input.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title must not be empty"})
			return
		}
		fields["title"] = *input.Title
	}
	if input.ImageURL != nil {
		if !validImageURL(*input.ImageURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is not a valid URL"})
			return
		}
		fields["image_url"] = *input.ImageURL
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	banner, err := ctrl.Store.UpdateBanner(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, banner)
}

// DeleteBanner menangani penghapusan banner. Baris database dihapus
// dulu; penghapusan gambar remote hanya best-effort dan kegagalannya
// cuma dicatat.
func (ctrl *Controller) DeleteBanner(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id query parameter is required"})
		return
	}

	banner, err := ctrl.Store.DeleteBanner(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if publicID := services.PublicIDFromURL(banner.ImageURL); publicID != "" {
		if err := ctrl.Images.Delete(ctx, publicID); err != nil {
			log.Println("Cloudinary delete error:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully"})
}
