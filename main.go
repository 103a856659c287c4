package main

import (
	"log"

	"snackmart-backend/config"
	"snackmart-backend/controllers"
	"snackmart-backend/routes"
	"snackmart-backend/services"
	"snackmart-backend/store"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}

	images, err := services.NewImageHost(cfg.CloudinaryURL, cfg.UploadPresets)
	if err != nil {
		log.Fatalf("Cloudinary initialization failed: %v", err)
	}

	ctrl := &controllers.Controller{
		Store:           store.New(db),
		Images:          images,
		Chat:            services.NewChatService(cfg.OpenAIKey),
		PasetoSecretKey: cfg.PasetoSecretKey,
		Env:             cfg.Env,
	}

	r := routes.Setup(ctrl, cfg.Env)
	log.Printf("Server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
