// File: controllers/upload.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// MaxUploadSize membatasi ukuran file yang diterima endpoint upload.
const MaxUploadSize = 10 * 1024 * 1024 // 10MB

// Jenis konten yang punya preset upload sendiri.
var uploadCategories = map[string]bool{
	"product":     true,
	"banner":      true,
	"highlighted": true,
}

// Upload menangani pengunggahan gambar ke image host. Kategori di
// ?type= menentukan preset yang dipakai.
func (ctrl *Controller) Upload(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	category := c.DefaultQuery("type", "product")
	if !uploadCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown upload type"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	url, publicID, err := ctrl.Images.Upload(ctx, file, category)
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url, "publicId": publicID})
}
