package main

import (
	"log"
	"os"

	"github.com/bekmurza/satkgbot/analytics"
	"github.com/bekmurza/satkgbot/bot"
	"github.com/bekmurza/satkgbot/catalog"
	"github.com/bekmurza/satkgbot/config"
	"github.com/bekmurza/satkgbot/web"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting SAT Kyrgyz bot...")

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Load the question bank; the bot is useless without it
	cat, err := catalog.Load(cfg.QuestionsPath)
	if err != nil {
		log.Fatalf("Failed to load questions: %v", err)
	}
	log.Printf("Loaded %d questions", cat.Len())

	// Analytics is best-effort: a missing database only disables it
	store := analytics.Open(cfg.DatabaseURL)
	defer store.Close()

	// Initialize the bot
	b, err := bot.New(cfg, cat, store)
	if err != nil {
		log.Fatalf("Failed to initialize bot: %v", err)
	}

	// Health endpoint for the hosting platform
	go func() {
		if err := web.Serve(cfg.Port); err != nil {
			log.Fatalf("Health server failed: %v", err)
		}
	}()

	log.Println("Bot initialized successfully")
	b.Start()
}
