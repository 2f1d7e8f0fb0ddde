package config

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Значения по умолчанию.
const (
	DefaultAuthSecret = "dev-secret-key"
	DefaultBaseURL    = "localhost:8000"
	DefaultTokenTTL   = 30 * time.Minute
	DefaultLogLevel   = "info"
	DefaultSQLiteFile = "corexus.db"
)

var DefaultCORSOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

type Config struct {
	// Server-side settings
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`
	LogLevel    string        `env:"LOG_LEVEL"`
	LogFile     string        `env:"LOG_FILE"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envSeparator:","`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL  string `env:"-"`
	StorageDir string `env:"STORAGE_DIR"`
	Version    bool   `env:"-"` // show version and exit (flag only)
}

var validate = validator.New()

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги переопределяют значения из env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (пусто: SQLite файл)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни токена доступа")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования: debug|info|warn|error")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "файл для логов с ротацией")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the Corexus server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.StorageDir, "storage-dir", cfg.StorageDir, "directory of the client local storage")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// applyDefaults заполняет пустые и невалидные значения.
func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = DefaultAuthSecret
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if validate.Var(cfg.LogLevel, "oneof=debug info warn error") != nil {
		cfg.LogLevel = DefaultLogLevel
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = DefaultCORSOrigins
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = DefaultSQLiteFile
	}
	// BaseURL должен быть в виде "address:port" (без схемы и пути), иначе берём значение по умолчанию
	if validate.Var(cfg.BaseURL, "required,hostname_port") != nil {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.StorageDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.StorageDir = filepath.Join(dir, "Corexus")
		} else {
			home, _ := os.UserHomeDir()
			cfg.StorageDir = filepath.Join(home, ".corexus")
		}
	}
}
