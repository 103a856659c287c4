// File: controllers/controller.go
package controllers

import (
	"context"
	"io"
	"strconv"

	"snackmart-backend/models"
	"snackmart-backend/store"

	"github.com/gin-gonic/gin"
)

// ImageHost adalah kontrak adapter image hosting yang dipakai handler.
type ImageHost interface {
	Upload(ctx context.Context, file io.Reader, category string) (url, publicID string, err error)
	Delete(ctx context.Context, publicID string) error
}

// ChatClient adalah kontrak klien chat-completion yang dipakai handler.
type ChatClient interface {
	Reply(ctx context.Context, message string, products []models.Product) (string, error)
}

// Controller menampung dependensi yang akan digunakan oleh semua handler.
// Semua dependensi disuntikkan dari main; tidak ada global.
type Controller struct {
	Store           *store.Store
	Images          ImageHost
	Chat            ChatClient
	PasetoSecretKey []byte
	Env             string
}

// queryID membaca parameter query ?id= sebagai uint.
func queryID(c *gin.Context) (uint, bool) {
	raw := c.Query("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
