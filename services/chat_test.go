package services_test

import (
	"context"
	"testing"

	"snackmart-backend/models"
	"snackmart-backend/services"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	products := []models.Product{
		{Name: "Opak Pedas", Category: "OPAK", Container: "TOPLES", Price: 15000, Stock: 20, Description: "Pedas nampol"},
		{Name: "Kacang Bawang", Category: "KACANG", Container: "BOX", Price: 12000, Stock: 0},
	}

	prompt := services.BuildPrompt("Ada yang pedas?", products)

	assert.Contains(t, prompt, "Opak Pedas")
	assert.Contains(t, prompt, "Pedas nampol")
	assert.Contains(t, prompt, "Kacang Bawang")
	assert.Contains(t, prompt, "stok 0")
	assert.Contains(t, prompt, "Ada yang pedas?")
}

func TestBuildPromptEmptyCatalog(t *testing.T) {
	prompt := services.BuildPrompt("Halo", nil)
	assert.Contains(t, prompt, "belum ada produk")
	assert.Contains(t, prompt, "Halo")
}

func TestReplyWithoutAPIKey(t *testing.T) {
	svc := services.NewChatService("")
	_, err := svc.Reply(context.Background(), "Halo", nil)
	assert.Error(t, err)
}
