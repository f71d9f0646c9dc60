package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Host string
		Port int
		Env  string // development | production
	}

	Database struct {
		DSN string
	}

	JWT struct {
		Secret string
		TTL    time.Duration
	}

	CORS struct {
		AllowedOrigins []string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	RateLimit struct {
		SignupLimit  int
		SignupWindow time.Duration
		LoginLimit   int
		LoginWindow  time.Duration
	}

	Storage struct {
		Type      string // local or r2
		BasePath  string
		Endpoint  string
		Region    string
		Bucket    string
		AccessKey string
		SecretKey string
		BaseURL   string
	}

	Upload struct {
		MaxSize      int64
		AllowedTypes []string
	}

	Email struct {
		SMTPHost     string
		SMTPPort     int
		SMTPUsername string
		SMTPPassword string
		FromEmail    string
		FromName     string
		BaseURL      string // public site URL used in email links
	}

	Geocode struct {
		BaseURL string
		APIKey  string
	}

	FirstAdminEmail    string
	FirstAdminPassword string
}

var AppConfig *Config

// LoadConfig reads configuration from the environment. A local .env file is
// loaded first when present; real environment variables win over it.
func LoadConfig() {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Server.Host = getEnv("HOST", "0.0.0.0")
	cfg.Server.Port = getEnvInt("PORT", 4000)
	cfg.Server.Env = getEnv("SERVER_ENV", "development")

	cfg.Database.DSN = getEnv("DATABASE_URL", "")

	cfg.JWT.Secret = getEnv("JWT_SECRET", "")
	cfg.JWT.TTL = time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour

	cfg.CORS.AllowedOrigins = splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"))

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.RateLimit.SignupLimit = getEnvInt("RATE_SIGNUP_LIMIT", 3)
	cfg.RateLimit.SignupWindow = time.Duration(getEnvInt("RATE_SIGNUP_WINDOW_MIN", 60)) * time.Minute
	cfg.RateLimit.LoginLimit = getEnvInt("RATE_LOGIN_LIMIT", 5)
	cfg.RateLimit.LoginWindow = time.Duration(getEnvInt("RATE_LOGIN_WINDOW_MIN", 15)) * time.Minute

	cfg.Storage.Type = getEnv("STORAGE_TYPE", "local")
	cfg.Storage.BasePath = getEnv("STORAGE_BASE_PATH", "./uploads")
	cfg.Storage.Endpoint = getEnv("STORAGE_ENDPOINT", "")
	cfg.Storage.Region = getEnv("STORAGE_REGION", "auto")
	cfg.Storage.Bucket = getEnv("STORAGE_BUCKET", "")
	cfg.Storage.AccessKey = getEnv("STORAGE_ACCESS_KEY", "")
	cfg.Storage.SecretKey = getEnv("STORAGE_SECRET_KEY", "")
	cfg.Storage.BaseURL = getEnv("STORAGE_BASE_URL", "")

	cfg.Upload.MaxSize = int64(getEnvInt("UPLOAD_MAX_SIZE", 10*1024*1024))
	cfg.Upload.AllowedTypes = splitCSV(getEnv("UPLOAD_ALLOWED_TYPES", "image/jpeg,image/png,image/gif,image/webp"))

	cfg.Email.SMTPHost = getEnv("SMTP_HOST", "")
	cfg.Email.SMTPPort = getEnvInt("SMTP_PORT", 587)
	cfg.Email.SMTPUsername = getEnv("SMTP_USER", "")
	cfg.Email.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.Email.FromEmail = getEnv("SMTP_FROM_EMAIL", "no-reply@fixmate.app")
	cfg.Email.FromName = getEnv("SMTP_FROM_NAME", "FixMate")
	cfg.Email.BaseURL = getEnv("APP_BASE_URL", "http://localhost:5173")

	cfg.Geocode.BaseURL = getEnv("GEOCODE_API_URL", "https://geocode.maps.co/search")
	cfg.Geocode.APIKey = getEnv("GEOCODE_API_KEY", "")

	cfg.FirstAdminEmail = getEnv("FIRST_ADMIN_EMAIL", "")
	cfg.FirstAdminPassword = getEnv("FIRST_ADMIN_PASSWORD", "")

	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
