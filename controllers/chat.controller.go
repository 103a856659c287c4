// File: controllers/chat.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ChatRequest mendefinisikan struktur permintaan widget chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// Chat menangani pertanyaan pembeli: katalog produk dimuat, digabung
// dengan pesan jadi satu prompt, lalu diteruskan ke model. Jawaban
// dikembalikan apa adanya.
func (ctrl *Controller) ChatHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	products, err := ctrl.Store.ListProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reply, err := ctrl.Chat.Reply(ctx, req.Message, products)
	if err != nil {
		log.Println("Chat completion error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get a reply"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
