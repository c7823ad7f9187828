package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds everything the dashboard reads from the environment.
type Settings struct {
	Addr             string
	BackendURL       string
	ContextsFile     string
	ReminderInterval time.Duration
	RefreshInterval  time.Duration
}

// Load environment variables and handle errors

func LoadEnv() {
	err := godotenv.Load()

	if err != nil {
		Logger.Warn("Error loading .env file, will use environment variables instead:", err)
		// Don't call Fatal here - continue execution
	}
}

func LoadSettings() Settings {
	return Settings{
		Addr:             getEnv("LISTEN_ADDR", ":8081"),
		BackendURL:       getEnv("LIFEOS_API_URL", "http://localhost:5001"),
		ContextsFile:     getEnv("CONTEXTS_FILE", "contexts.toml"),
		ReminderInterval: getDuration("REMINDER_INTERVAL", 15*time.Minute),
		RefreshInterval:  getDuration("REFRESH_INTERVAL", time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		Logger.Warn("Invalid duration in ", key, ", using default ", defaultValue)
	}
	return defaultValue
}
