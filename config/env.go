package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig menampung semua variabel konfigurasi aplikasi.
type AppConfig struct {
	Port            string
	Env             string
	DatabaseURL     string
	PasetoSecretKey []byte
	CloudinaryURL   string
	UploadPresets   map[string]string
	OpenAIKey       string
}

// Load memuat konfigurasi dari file .env atau environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("ENVIRONMENT", "development"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=snackmart port=5432 sslmode=disable"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
	}

	// Preset upload Cloudinary per jenis konten
	cfg.UploadPresets = map[string]string{
		"product":     getEnv("CLOUDINARY_PRESET_PRODUCT", ""),
		"banner":      getEnv("CLOUDINARY_PRESET_BANNER", ""),
		"highlighted": getEnv("CLOUDINARY_PRESET_HIGHLIGHTED", ""),
	}

	// Atur Kunci Paseto
	key := getEnv("PASETO_SECRET_KEY", "")
	if len(key) != 32 {
		log.Fatal("PASETO_SECRET_KEY must be 32 characters long!")
	}
	cfg.PasetoSecretKey = []byte(key)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
