package config

import (
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnvVar names the environment variable carrying the directions
// provider key.
const APIKeyEnvVar = "EGGY_MAPS_API_KEY"

// LoadAPIKey returns the directions provider API key from the environment,
// sourcing a local .env file first if one exists. An empty key is not an
// error here; the client degrades to the disk cache and the board shows N/A.
func LoadAPIKey() string {
	// Missing .env is the normal case for installed binaries
	_ = godotenv.Load()

	return os.Getenv(APIKeyEnvVar)
}
