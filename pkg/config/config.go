package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type BatchConfig struct {
	// Delay between two sequential creation requests. The backend generates
	// reference numbers racily, so items must not be created concurrently.
	Delay       time.Duration
	MaxQuantity int
}

type StorageConfig struct {
	UploadsDir string
	DraftTTL   time.Duration
}

type LogConfig struct {
	Level string
	File  string
}

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	Batch   BatchConfig
	Storage StorageConfig
	Log     LogConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:5000/api"), "/"),
			Timeout: getDuration("BACKEND_TIMEOUT", 20*time.Second),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Batch: BatchConfig{
			Delay:       getDuration("BATCH_DELAY", 500*time.Millisecond),
			MaxQuantity: getInt("BATCH_MAX_QUANTITY", 50),
		},
		Storage: StorageConfig{
			UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
			DraftTTL:   getDuration("DRAFT_TTL", 24*time.Hour),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "debug"),
			File:  getEnv("LOG_FILE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid duration in %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid integer in %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
