package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	// ApiBase is the target of the REST binding (client side).
	ApiBase string

	// DemoMode serves the API from the seeded in-memory store instead of
	// Postgres, for demonstration accounts.
	DemoMode bool

	// DemoLoginCode is the verification code accepted for demo logins.
	DemoLoginCode string

	// SessionPath overrides where the persisted demo session lives.
	SessionPath string

	// ActivityRetentionDays bounds how long user activities are kept.
	ActivityRetentionDays int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "gpumarket")
	ServerPort = getEnv("SERVER_PORT", "9000")
	Issuer = getEnv("ISSUER", "gpumarket")

	ApiBase = getEnv("API_BASE", "http://localhost:9000")
	DemoMode, _ = strconv.ParseBool(getEnv("DEMO_MODE", "false"))
	DemoLoginCode = getEnv("DEMO_LOGIN_CODE", "123456")
	SessionPath = getEnv("SESSION_PATH", "")
	if SessionPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			SessionPath = filepath.Join(home, ".gpumarket", "session.json")
		} else {
			SessionPath = filepath.Join(os.TempDir(), "gpumarket-session.json")
		}
	}

	ActivityRetentionDays, _ = strconv.Atoi(getEnv("ACTIVITY_RETENTION_DAYS", "30"))
	if ActivityRetentionDays <= 0 {
		ActivityRetentionDays = 30
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
