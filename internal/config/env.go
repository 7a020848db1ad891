package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/buildsettings/internal/logfields"
)

// loadEnvFile loads environment variables from .env/.env.local in dir.
// It stops at the first file that loads. Existing process variables win.
func loadEnvFile(dir string) error {
	for _, name := range []string{".env", ".env.local"} {
		envPath := filepath.Join(dir, name)
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("failed to load %s: %w", envPath, err)
		}
		slog.Debug("Loaded environment variables", logfields.Path(envPath))
		return nil
	}
	return fmt.Errorf("no .env file found")
}
