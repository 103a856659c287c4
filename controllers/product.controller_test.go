package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"snackmart-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductThenGet(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/product/createProduct", map[string]interface{}{
		"name":        "Opak Pedas",
		"description": "Opak singkong pedas",
		"price":       15000.0,
		"stock":       20,
		"category":    "OPAK",
		"container":   "TOPLES",
		"imageUrl":    "https://res.cloudinary.com/demo/image/upload/v1/snackmart/product/opak.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	decode(t, w, &created)
	require.NotZero(t, created.ID)

	w = env.request(t, http.MethodGet, "/api/product/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	decode(t, w, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Opak Pedas", got.Name)
	assert.Equal(t, 15000.0, got.Price)
	assert.Equal(t, 20, got.Stock)
	assert.Equal(t, "OPAK", got.Category)
	assert.Equal(t, "TOPLES", got.Container)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"price": 1000.0, "stock": 1, "category": "OPAK", "container": "BOX"}},
		{"missing price", map[string]interface{}{"name": "X", "stock": 1, "category": "OPAK", "container": "BOX"}},
		{"missing stock", map[string]interface{}{"name": "X", "price": 1000.0, "category": "OPAK", "container": "BOX"}},
		{"zero price", map[string]interface{}{"name": "X", "price": 0.0, "stock": 1, "category": "OPAK", "container": "BOX"}},
		{"negative price", map[string]interface{}{"name": "X", "price": -5.0, "stock": 1, "category": "OPAK", "container": "BOX"}},
		{"negative stock", map[string]interface{}{"name": "X", "price": 1000.0, "stock": -1, "category": "OPAK", "container": "BOX"}},
		{"bad category", map[string]interface{}{"name": "X", "price": 1000.0, "stock": 1, "category": "KERIPIK", "container": "BOX"}},
		{"bad container", map[string]interface{}{"name": "X", "price": 1000.0, "stock": 1, "category": "OPAK", "container": "KALENG"}},
		{"bad image url", map[string]interface{}{"name": "X", "price": 1000.0, "stock": 1, "category": "OPAK", "container": "BOX", "imageUrl": "bukan url"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/api/product/createProduct", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// Tidak ada yang tersimpan setelah semua request gagal.
	var count int64
	require.NoError(t, env.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetProductsNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	older := models.Product{Name: "Lama", Price: 1000, Stock: 1, Category: "OPAK", Container: "BOX",
		CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.Product{Name: "Baru", Price: 2000, Stock: 2, Category: "KACANG", Container: "TOPLES"}
	require.NoError(t, env.db.Create(&older).Error)
	require.NoError(t, env.db.Create(&newer).Error)

	w := env.request(t, http.MethodGet, "/api/product/getProduct", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	decode(t, w, &products)
	require.Len(t, products, 2)
	assert.Equal(t, "Baru", products[0].Name)
	assert.Equal(t, "Lama", products[1].Name)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/product/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodGet, "/api/product/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditProductPartial(t *testing.T) {
	env := newTestEnv(t)

	p := models.Product{Name: "Bastik Ayam", Price: 20000, Stock: 5, Category: "BASTIK", Container: "BOX"}
	require.NoError(t, env.db.Create(&p).Error)

	w := env.request(t, http.MethodPut, "/api/product/editProduct?id=1", map[string]interface{}{
		"stock": 12,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	decode(t, w, &updated)
	assert.Equal(t, 12, updated.Stock)
	assert.Equal(t, "Bastik Ayam", updated.Name)
	assert.Equal(t, 20000.0, updated.Price)

	w = env.request(t, http.MethodPut, "/api/product/editProduct?id=999", map[string]interface{}{"stock": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.request(t, http.MethodPut, "/api/product/editProduct", map[string]interface{}{"stock": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	p := models.Product{Name: "Kacang Bawang", Price: 10000, Stock: 3, Category: "KACANG", Container: "TOPLES",
		ImageURL: "https://res.cloudinary.com/demo/image/upload/v99/snackmart/product/kacang.jpg"}
	require.NoError(t, env.db.Create(&p).Error)

	w := env.request(t, http.MethodDelete, "/api/product/deleteProduct?id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)

	// Gambar remote ikut dibersihkan.
	require.Len(t, env.images.deleted, 1)
	assert.Equal(t, "snackmart/product/kacang", env.images.deleted[0])

	w = env.request(t, http.MethodDelete, "/api/product/deleteProduct?id=1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProductsWithHighlighted(t *testing.T) {
	env := newTestEnv(t)

	plain := models.Product{Name: "Biasa", Price: 5000, Stock: 1, Category: "OPAK", Container: "BOX",
		CreatedAt: time.Now().Add(-time.Minute)}
	starred := models.Product{Name: "Unggulan", Price: 9000, Stock: 2, Category: "KACANG", Container: "TOPLES"}
	require.NoError(t, env.db.Create(&plain).Error)
	require.NoError(t, env.db.Create(&starred).Error)
	require.NoError(t, env.db.Create(&models.HighlightedProduct{ProductID: starred.ID, IsActive: true}).Error)

	w := env.request(t, http.MethodGet, "/api/product/getProductWithHighlighted", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []struct {
		models.Product
		Highlighted *models.HighlightSummary `json:"highlightedProduct"`
	}
	decode(t, w, &rows)
	require.Len(t, rows, 2)

	// Terbaru dulu: produk unggulan dibuat belakangan.
	assert.Equal(t, "Unggulan", rows[0].Name)
	require.NotNil(t, rows[0].Highlighted)
	assert.True(t, rows[0].Highlighted.IsActive)
	assert.Nil(t, rows[1].Highlighted)
}
