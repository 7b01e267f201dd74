package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ErrMissingProjectID is returned when FIREBASE_PROJECT_ID is empty or unset.
var ErrMissingProjectID = errors.New("firebase configuration not found: FIREBASE_PROJECT_ID is not set")

// Firebase holds the web app configuration values of the Firebase project.
// Only ProjectID and StorageBucket are used by the seeder; the rest are
// loaded so the same .env file as the app can be shared.
type Firebase struct {
	APIKey            string
	AuthDomain        string
	ProjectID         string
	StorageBucket     string
	MessagingSenderID string
	AppID             string
}

// LoadEnvFile loads path into the environment. Variables that are already
// set are not overridden. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		// No .env file found, system environment variables are used instead
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadFirebase loads envFile (if present) and reads the Firebase configuration
// from the environment.
func LoadFirebase(envFile string) (*Firebase, error) {
	if err := LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg := &Firebase{
		APIKey:            os.Getenv("FIREBASE_API_KEY"),
		AuthDomain:        os.Getenv("FIREBASE_AUTH_DOMAIN"),
		ProjectID:         os.Getenv("FIREBASE_PROJECT_ID"),
		StorageBucket:     os.Getenv("FIREBASE_STORAGE_BUCKET"),
		MessagingSenderID: os.Getenv("FIREBASE_MESSAGING_SENDER_ID"),
		AppID:             os.Getenv("FIREBASE_APP_ID"),
	}

	if cfg.ProjectID == "" {
		return nil, ErrMissingProjectID
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default value if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
