// File: controllers/highlighted.controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"snackmart-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateHighlightedProduct menangani penandaan produk sebagai unggulan.
// Default: priority 0, aktif, tanpa batas waktu. Produk yang sudah
// unggulan ditolak; unique index di database jadi jaring pengaman
// terhadap dua request yang lolos pemeriksaan bersamaan.
func (ctrl *Controller) CreateHighlightedProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.HighlightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ProductID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
		return
	}

	if _, err := ctrl.Store.GetProduct(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	exists, err := ctrl.Store.HighlightExists(ctx, input.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product is already highlighted"})
		return
	}

	highlight := models.HighlightedProduct{
		ProductID: input.ProductID,
		IsActive:  true,
	}
	if input.Priority != nil {
		highlight.Priority = *input.Priority
	}
	if input.IsActive != nil {
		highlight.IsActive = *input.IsActive
	}
	if input.EndDate != nil {
		highlight.EndDate = input.EndDate
	}

	if err := ctrl.Store.CreateHighlight(ctx, &highlight); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is already highlighted"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, highlight)
}

// EditHighlighted menangani pembaruan record unggulan. Hanya field yang
// dikirim yang diubah; endDate bisa dikosongkan dengan null eksplisit.
func (ctrl *Controller) EditHighlighted(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id query parameter is required"})
		return
	}

	var input models.HighlightUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if input.Priority != nil {
		fields["priority"] = *input.Priority
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if input.EndDate != nil {
		fields["end_date"] = *input.EndDate
	}

	highlight, err := ctrl.Store.UpdateHighlight(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Highlighted product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, highlight)
}

// DeleteHighlighted menangani penghapusan record unggulan.
func (ctrl *Controller) DeleteHighlighted(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id query parameter is required"})
		return
	}

	if err := ctrl.Store.DeleteHighlight(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Highlighted product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Highlighted product deleted successfully"})
}

// GetHighlightedProducts menangani pengambilan unggulan. Dengan
// ?active=true hasilnya proyeksi publik untuk carousel; tanpa itu,
// semua record beserta produknya untuk layar admin.
func (ctrl *Controller) GetHighlightedProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.Query("active") == "true" {
		highlights, err := ctrl.Store.ListActiveHighlights(ctx, time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		featured := make([]models.FeaturedProduct, 0, len(highlights))
		for _, h := range highlights {
			imageURL := h.Product.ImageURL
			if imageURL == "" {
				imageURL = models.DefaultProductImage(h.ProductID)
			}
			featured = append(featured, models.FeaturedProduct{
				ID:          h.ID,
				ProductID:   h.ProductID,
				Priority:    h.Priority,
				EndDate:     h.EndDate,
				Name:        h.Product.Name,
				Description: h.Product.Description,
				Price:       h.Product.Price,
				Stock:       h.Product.Stock,
				ImageURL:    imageURL,
			})
		}
		c.JSON(http.StatusOK, featured)
		return
	}

	highlights, err := ctrl.Store.ListHighlights(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type highlightWithProduct struct {
		models.HighlightedProduct
		Product models.Product `json:"product"`
	}
	result := make([]highlightWithProduct, 0, len(highlights))
	for _, h := range highlights {
		row := highlightWithProduct{HighlightedProduct: h, Product: h.Product}
		row.HighlightedProduct.Product = models.Product{}
		result = append(result, row)
	}
	c.JSON(http.StatusOK, result)
}
