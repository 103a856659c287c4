// Script provisioning akun admin. Dijalankan offline, bukan bagian
// dari server:
//
//	go run ./cmd/createadmin -username admin -password rahasia
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"snackmart-backend/config"
	"snackmart-backend/models"
	"snackmart-backend/store"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "username admin baru")
	password := flag.String("password", "", "password admin baru")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("username and password are required")
	}

	cfg := config.Load()
	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	s := store.New(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.GetAdminByUsername(ctx, *username); err == nil {
		log.Fatalf("Admin %q already exists", *username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.Admin{Username: *username, Password: string(hashed)}
	if err := s.CreateAdmin(ctx, &admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Admin %q created with ID %d", admin.Username, admin.ID)
}
