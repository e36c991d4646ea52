package repository

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wraps an already-open gorm connection. Tests use this with
// an in-memory sqlite database.
func NewWithDB(db *gorm.DB) (*Repository, error) {
	err := db.AutoMigrate(
		&ds.Category{},
		&ds.Service{},
		&ds.Memo{},
		&ds.ServiceRelation{},
		&ds.ComparisonAttribute{},
		&ds.ServiceAttributeValue{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}
