package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all the configuration for the application
type Config struct {
	BotToken      string
	DatabaseURL   string // empty disables analytics
	QuestionsPath string
	Port          string
	AdminID       int64 // 0 disables /admin
}

// Load loads the configuration from environment variables, reading a .env
// file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		return nil, errors.New("BOT_TOKEN environment variable is required")
	}

	questionsPath := os.Getenv("QUESTIONS_PATH")
	if questionsPath == "" {
		questionsPath = "assets/questions.json"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	var adminID int64
	if v := os.Getenv("ADMIN_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.New("ADMIN_ID must be a numeric Telegram user id")
		}
		adminID = id
	}

	return &Config{
		BotToken:      botToken,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		QuestionsPath: questionsPath,
		Port:          port,
		AdminID:       adminID,
	}, nil
}
