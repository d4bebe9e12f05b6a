package config

import (
	"log"
	"os"
	"strconv"

	units "github.com/docker/go-units"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Uploads UploadConfig
	Preview PreviewConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

type UploadConfig struct {
	// MaxFileSize is parsed from a human-readable string like "10MB".
	MaxFileSize int64
}

type PreviewConfig struct {
	HeightPx  int
	Scrolling bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
			Temperature:     float32(getEnvAsFloat("GEMINI_TEMPERATURE", 0.7)),
			MaxOutputTokens: int32(getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 8192)),
		},
		Uploads: UploadConfig{
			MaxFileSize: getEnvAsSize("MAX_UPLOAD_SIZE", "10MB"),
		},
		Preview: PreviewConfig{
			HeightPx:  getEnvAsInt("PREVIEW_HEIGHT", 600),
			Scrolling: getEnvAsBool("PREVIEW_SCROLLING", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSize(key string, defaultValue string) int64 {
	valueStr := getEnv(key, defaultValue)
	if size, err := units.FromHumanSize(valueStr); err == nil {
		return size
	}
	size, _ := units.FromHumanSize(defaultValue)
	return size
}
