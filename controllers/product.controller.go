// File: controllers/product.controller.go
package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"snackmart-backend/models"
	"snackmart-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// validImageURL memeriksa sintaks imageUrl: URL absolut http(s) atau
// path relatif ke root.
func validImageURL(s string) bool {
	if strings.HasPrefix(s, "/") {
		return true
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// GetProducts menangani pengambilan semua produk.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := ctrl.Store.ListProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct menangani pengambilan satu produk berdasarkan ID.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := ctrl.Store.GetProduct(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductsWithHighlighted menangani pengambilan semua produk dengan
// ringkasan status unggulannya untuk tabel admin.
func (ctrl *Controller) GetProductsWithHighlighted(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := ctrl.Store.ListProductsWithHighlight(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type productWithHighlight struct {
		models.Product
		Highlighted *models.HighlightSummary `json:"highlightedProduct,omitempty"`
	}

	result := make([]productWithHighlight, 0, len(products))
	for _, p := range products {
		row := productWithHighlight{Product: p}
		if p.Highlighted != nil {
			row.Highlighted = &models.HighlightSummary{
				ID:       p.Highlighted.ID,
				IsActive: p.Highlighted.IsActive,
			}
		}
		row.Product.Highlighted = nil
		result = append(result, row)
	}
	c.JSON(http.StatusOK, result)
}

// CreateProduct menangani pembuatan produk baru.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name == "" || input.Price == nil || input.Stock == nil || input.Category == "" || input.Container == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, stock, category and container are required"})
		return
	}
	if *input.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
		return
	}
	if *input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
		return
	}
	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}
	if !models.ValidContainer(input.Container) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown container"})
		return
	}
	if input.ImageURL != "" && !validImageURL(input.ImageURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is not a valid URL"})
		return
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Stock:       *input.Stock,
		Category:    input.Category,
		Container:   input.Container,
		ImageURL:    input.ImageURL,
	}
	if err := ctrl.Store.CreateProduct(ctx, &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// EditProduct menangani pembaruan data produk. Field yang tidak dikirim
// dibiarkan apa adanya.
func (ctrl *Controller) EditProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id query parameter is required"})
		return
	}

	var input models.ProductUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		if *input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
			return
		}
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
			return
		}
		fields["price"] = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must not be negative"})
			return
		}
		fields["stock"] = *input.Stock
	}
	if input.Category != nil {
		if !models.ValidCategory(*input.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		fields["category"] = *input.Category
	}
	if input.Container != nil {
		if !models.ValidContainer(*input.Container) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown container"})
			return
		}
		fields["container"] = *input.Container
	}
	if input.ImageURL != nil {
		if *input.ImageURL != "" && !validImageURL(*input.ImageURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is not a valid URL"})
			return
		}
		fields["image_url"] = *input.ImageURL
	}

	product, err := ctrl.Store.UpdateProduct(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct menangani penghapusan produk. Gambar remote ikut
// dibersihkan secara best-effort setelah baris database terhapus.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, ok := queryID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id query parameter is required"})
		return
	}

	product, err := ctrl.Store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.Store.DeleteProduct(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if publicID := services.PublicIDFromURL(product.ImageURL); publicID != "" {
		if err := ctrl.Images.Delete(ctx, publicID); err != nil {
			log.Println("Cloudinary delete error:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
