package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// It is loaded once at startup and never mutated afterwards.
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	AMQP     AMQPConfig
	Cron     CronConfig
	Upload   UploadConfig
	Seed     SeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds credential signing configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// RedisConfig holds the shared rate limiter store. Empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
}

// AMQPConfig holds the lifecycle event broker. Empty URL disables publishing.
type AMQPConfig struct {
	URL            string
	Exchange       string
	QueueSize      int
	DialTimeout    time.Duration
	PublishTimeout time.Duration
}

// CronConfig holds background schedule specs. Empty spec disables the job.
type CronConfig struct {
	OverdueScanSpec string
}

// UploadConfig bounds multipart uploads
type UploadConfig struct {
	MaxFiles    int
	BodyLimitMB int
}

// SeedConfig holds the bootstrap administrator account
type SeedConfig struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Warn("⚠️ .env file not found, using environment variables")
	}

	// Trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "5506"),
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Redis:    loadRedisConfig(),
		AMQP: AMQPConfig{
			URL:            getEnv("AMQP_URL", ""),
			Exchange:       getEnv("AMQP_EXCHANGE", "cmms.events"),
			QueueSize:      getEnvInt("AMQP_QUEUE_SIZE", 256),
			DialTimeout:    time.Duration(getEnvInt("AMQP_DIAL_TIMEOUT_SECONDS", 2)) * time.Second,
			PublishTimeout: time.Duration(getEnvInt("AMQP_PUBLISH_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Cron: CronConfig{
			OverdueScanSpec: getEnv("OVERDUE_SCAN_SPEC", "@every 1h"),
		},
		Upload: UploadConfig{
			MaxFiles:    getEnvInt("UPLOAD_MAX_FILES", 10),
			BodyLimitMB: getEnvInt("UPLOAD_BODY_LIMIT_MB", 32),
		},
		Seed: SeedConfig{
			AdminName:     getEnv("SEED_ADMIN_NAME", "Administrator"),
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
	}

	if config.IsProd() && config.JWT.Secret == defaultSecret {
		return nil, fmt.Errorf("PROD_JWT_SECRET must be set in prod mode")
	}

	log.Infof("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

const defaultSecret = "default_secret"

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := modePrefix(mode)

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "cmms"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	return JWTConfig{
		Secret:          getEnv(modePrefix(mode)+"JWT_SECRET", defaultSecret),
		AccessTokenMins: getEnvInt("ACCESS_TOKEN_MINUTES", 60),
	}
}

func loadRedisConfig() RedisConfig {
	addr := getEnv("REDIS_ADDR", "")
	if host, port := getEnv("REDIS_HOST", ""), getEnv("REDIS_PORT", ""); host != "" && port != "" {
		addr = host + ":" + port
	}
	tls, _ := strconv.ParseBool(getEnv("REDIS_TLS", "false"))

	return RedisConfig{
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
		TLS:      tls,
	}
}

func modePrefix(mode string) string {
	if mode == "prod" {
		return "PROD_"
	}
	return "DEV_"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// TokenTTL returns the credential lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.AccessTokenMins) * time.Minute
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://cmms.example.com"
	}
	return origins
}
