package main

import (
	"log"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/dsn"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/repository"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	repo, err := repository.NewWithDB(db)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := repo.SeedDefaultAttributes(); err != nil {
		log.Fatalf("Failed to seed default attributes: %v", err)
	}

	log.Println("Database migration completed successfully")
}
