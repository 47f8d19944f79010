package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Database struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// Enabled reports whether a database was configured; without one the
// action journal only goes to the log
func (d Database) Enabled() bool {
	return d.Host != "" && d.Name != ""
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type Config struct {
	Env          string
	Host         string
	Port         string
	FrontendURL  string
	JWTSecret    string
	GeminiAPIKey string
	GeminiModel  string
	LogDir       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Database     Database
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the .env file when present and collects the environment
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment
func FromEnv() (Config, error) {
	cfg := Config{
		Env:          getEnv("APP_ENV", "development"),
		Host:         getEnv("APP_HOST", "0.0.0.0"),
		Port:         getEnv("APP_PORT", "8080"),
		FrontendURL:  getEnv("FRONTEND_URL", "*"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LogDir:       getEnv("LOG_DIR", "log/app"),
		Database: Database{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     os.Getenv("DB_DATABASE"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	var err error
	if cfg.ReadTimeout, err = getSeconds("APP_READ_TIMEOUT", 30); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = getSeconds("APP_WRITE_TIMEOUT", 30); err != nil {
		return Config{}, err
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "marhaba-dev-secret"
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getSeconds(key string, fallback int) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Second, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number of seconds, got %q", key, v)
	}
	return time.Duration(n) * time.Second, nil
}
