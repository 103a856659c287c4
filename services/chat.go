// File: services/chat.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"snackmart-backend/models"

	openai "github.com/sashabaranov/go-openai"
)

// ChatService membungkus klien chat-completion untuk widget chat toko.
// Tanpa memori percakapan, tanpa retry, tanpa streaming.
type ChatService struct {
	client *openai.Client
	model  string
}

// NewChatService membuat ChatService. Kalau API key kosong, klien nil
// dan setiap panggilan Reply akan gagal.
func NewChatService(apiKey string) *ChatService {
	svc := &ChatService{model: openai.GPT4oMini}
	if apiKey != "" {
		svc.client = openai.NewClient(apiKey)
	}
	return svc
}

// Reply mengirim pesan pengguna beserta katalog produk ke model dan
// mengembalikan jawabannya apa adanya (hanya di-trim).
func (s *ChatService) Reply(ctx context.Context, message string, products []models.Product) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("chat model is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(message, products),
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildPrompt merangkai katalog produk dan pesan pengguna jadi satu
// prompt teks.
func BuildPrompt(message string, products []models.Product) string {
	var b strings.Builder
	b.WriteString("Kamu adalah asisten toko camilan Snackmart. Jawab pertanyaan pembeli berdasarkan katalog berikut.\n\n")
	b.WriteString("Katalog produk:\n")
	if len(products) == 0 {
		b.WriteString("(belum ada produk)\n")
	}
	for _, p := range products {
		b.WriteString(fmt.Sprintf("- %s | kategori %s | kemasan %s | harga %.0f | stok %d",
			p.Name, p.Category, p.Container, p.Price, p.Stock))
		if p.Description != "" {
			b.WriteString(" | " + p.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nPertanyaan pembeli: " + message)
	return b.String()
}
