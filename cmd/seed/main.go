// Command main runs the database seeder for the news portal.
package main

import (
	"flag"
	"log"

	"portalberita/internal/config"
	"portalberita/internal/database"
	"portalberita/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 5, "Number of regular users to create")
	numNews := flag.Int("news", 25, "Number of articles to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d articles, clean=%v", *numUsers, *numNews, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumNews:     *numNews,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
