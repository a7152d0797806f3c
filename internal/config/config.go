package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const minReleaseJWTSecretBytes = 32

type Config struct {
	DBDriver       string        `yaml:"db_driver"`
	DBHost         string        `yaml:"db_host"`
	DBPort         string        `yaml:"db_port"`
	DBUser         string        `yaml:"db_user"`
	DBPassword     string        `yaml:"db_password"`
	DBName         string        `yaml:"db_name"`
	RedisHost      string        `yaml:"redis_host"`
	RedisPort      string        `yaml:"redis_port"`
	SessionSecret  string        `yaml:"session_secret"`
	JWTSecret      string        `yaml:"jwt_secret"`
	JWTTTL         time.Duration `yaml:"jwt_ttl"`
	GinMode        string        `yaml:"gin_mode"`
	Port           string        `yaml:"port"`
	OpenAIAPIKey   string        `yaml:"openai_api_key"`
	ChatRateLimit  int           `yaml:"chat_rate_limit"`
	ChatRateWindow time.Duration `yaml:"chat_rate_window"`
	FrontendURL    string        `yaml:"frontend_url"`
}

func defaults() *Config {
	return &Config{
		DBDriver:       "mysql",
		DBHost:         "localhost",
		DBPort:         "3306",
		DBUser:         "labouruser",
		DBPassword:     "labourpassword",
		DBName:         "labourlink",
		RedisHost:      "localhost",
		RedisPort:      "6379",
		SessionSecret:  "default-secret-key-change-me",
		JWTSecret:      "default-jwt-secret-change-me",
		JWTTTL:         7 * 24 * time.Hour,
		GinMode:        "debug",
		Port:           "8080",
		ChatRateLimit:  5,
		ChatRateWindow: 10 * time.Second,
		FrontendURL:    "http://localhost:4173",
	}
}

// Load reads defaults, then the optional YAML file named by CONFIG_FILE, then
// .env and process environment variables.
func Load() *Config {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			log.Printf("Warning: could not load config file %s: %v", path, err)
		}
	}

	applyEnv(cfg)
	return cfg
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.RedisHost = getEnv("REDIS_HOST", cfg.RedisHost)
	cfg.RedisPort = getEnv("REDIS_PORT", cfg.RedisPort)
	cfg.SessionSecret = getEnv("SESSION_SECRET", cfg.SessionSecret)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTTTL = getDurationEnv("JWT_TTL", cfg.JWTTTL)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.OpenAIAPIKey = getEnv("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.ChatRateLimit = getIntEnv("CHAT_RATE_LIMIT", cfg.ChatRateLimit)
	cfg.ChatRateWindow = getDurationEnv("CHAT_RATE_WINDOW", cfg.ChatRateWindow)
	cfg.FrontendURL = getEnv("FRONTEND_URL", cfg.FrontendURL)
}

// Validate reports configuration that the server cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected mysql or postgres)", c.DBDriver)
	}
	if c.GinMode == "release" && len(c.JWTSecret) < minReleaseJWTSecretBytes {
		return fmt.Errorf("JWT_SECRET must be at least %d characters in release mode", minReleaseJWTSecretBytes)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.ChatRateLimit <= 0 || c.ChatRateWindow <= 0 {
		return fmt.Errorf("CHAT_RATE_LIMIT and CHAT_RATE_WINDOW must be positive")
	}
	return nil
}

// RedisAddr returns host:port for the Redis server.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
