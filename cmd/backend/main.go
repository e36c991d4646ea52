package main

import (
	"log"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/config"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/pkg"

	_ "github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/docs"
)

// @title AWS Service Catalog API
// @version 1.0
// @description Catalog and annotation backend for AWS services: search, memos, relations, attribute comparison and export.
// @BasePath /
func main() {
	log.Println("App start")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app, err := pkg.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to init application: %v", err)
	}

	app.RunApp()
	log.Println("App terminated")
}
