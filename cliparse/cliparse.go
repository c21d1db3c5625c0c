package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Operating modes
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Fallback secrets used when nothing is configured. These are insecure and
// main logs a warning whenever one of them is in effect.
const (
	DefaultAdminPassword = "admin123"
	DefaultJWTSecret     = "fallback-secret"
)

type Config struct {
	Port         int
	BindAddr     string
	DatabaseURL  string
	DatabaseType string

	AdminPassword     string
	AdminPasswordHash string // bcrypt; overrides AdminPassword when set
	JWTSecret         string

	Mode         string
	DistDir      string
	DevServerURL string
	CORSOrigins  []string
	LogLevel     slog.Level

	// Set when the corresponding secret fell back to its default.
	UsingDefaultPassword bool
	UsingDefaultSecret   bool
}

// Addr returns the host:port the server listens on.
func (c Config) Addr() string {
	return c.BindAddr + ":" + strconv.Itoa(c.Port)
}

// IsProduction reports whether static assets are served from DistDir.
func (c Config) IsProduction() bool {
	return c.Mode == ModeProduction
}

// LoadDotEnv loads variables from a .env file in the working directory.
// Variables already present in the environment are left untouched, and a
// missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ParseFlags reads configuration from CLI flags, falling back to environment
// variables and then to defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var cors, logLevel string

	fs := flag.NewFlagSet("scam-shield", flag.ContinueOnError)

	// Network config
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BindAddr, "addr", "", "Bind address")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin password (prefer env)")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Token signing key (prefer env)")

	// Front-end serving
	fs.StringVar(&cfg.Mode, "env", "", "Operating mode (development or production)")
	fs.StringVar(&cfg.DistDir, "dist", "", "Directory with the built front-end")
	fs.StringVar(&cfg.DevServerURL, "dev-server", "", "Front-end dev server URL")
	fs.StringVar(&cors, "cors", "", "Comma-separated allowed CORS origins")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	cfg.BindAddr = firstNonEmpty(cfg.BindAddr, os.Getenv("BIND_ADDR"), "0.0.0.0")
	cfg.DatabaseType = firstNonEmpty(cfg.DatabaseType, os.Getenv("DATABASE_TYPE"), DatabaseSQLite)
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "scam_shield.db"
	}

	// Secrets fall back to insecure defaults
	cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	cfg.AdminPassword = firstNonEmpty(cfg.AdminPassword, os.Getenv("ADMIN_PASSWORD"))
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		cfg.AdminPassword = DefaultAdminPassword
		cfg.UsingDefaultPassword = true
	}
	cfg.JWTSecret = firstNonEmpty(cfg.JWTSecret, os.Getenv("JWT_SECRET"))
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret
		cfg.UsingDefaultSecret = true
	}

	cfg.Mode = firstNonEmpty(cfg.Mode, os.Getenv("APP_ENV"), os.Getenv("NODE_ENV"), ModeDevelopment)
	if cfg.Mode != ModeDevelopment && cfg.Mode != ModeProduction {
		return Config{}, fmt.Errorf("unsupported mode %q", cfg.Mode)
	}
	cfg.DistDir = firstNonEmpty(cfg.DistDir, os.Getenv("DIST_DIR"), "dist")
	cfg.DevServerURL = firstNonEmpty(cfg.DevServerURL, os.Getenv("DEV_SERVER_URL"), "http://localhost:5173")
	cfg.CORSOrigins = splitList(firstNonEmpty(cors, os.Getenv("CORS_ORIGINS"), "*"))

	if err := cfg.LogLevel.UnmarshalText([]byte(firstNonEmpty(logLevel, os.Getenv("LOG_LEVEL"), "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
