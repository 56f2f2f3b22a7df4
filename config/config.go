package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the process-wide configuration, loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	AppPort     string
	AppMode     string
	AdminSecret string

	MongoURI string
	MongoDB  string

	S3Region     string
	S3Bucket     string
	S3AccessKey  string
	S3SecretKey  string
	S3Endpoint   string
	S3PublicBase string
	S3Folder     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	ProbeCacheTTLMin int

	// Comma-separated host allow list for the download proxy.
	// Empty means any host is allowed.
	ProxyAllowedHosts string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:     getEnv("APP_PORT", "8080"),
		AppMode:     getEnv("APP_MODE", "debug"),
		AdminSecret: getEnv("ADMIN_SECRET", ""),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "ap"),

		S3Region:     getEnv("S3_REGION", ""),
		S3Bucket:     getEnv("S3_BUCKET", ""),
		S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3PublicBase: getEnv("S3_PUBLIC_BASE", ""),
		S3Folder:     getEnv("S3_FOLDER", "uploads"),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		ProbeCacheTTLMin: getEnvAsInt("PROBE_CACHE_TTL_MIN", 5),

		ProxyAllowedHosts: getEnv("PROXY_ALLOWED_HOSTS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
