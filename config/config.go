package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTAccessSecret string

	// Redis backs the receipt cache and the rate limiter
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ReceiptCacheTTL time.Duration

	// Kafka is optional; no brokers disables document events
	KafkaBrokers   []string
	DocumentsTopic string

	// S3 archive of generated documents; empty bucket disables it
	AWSRegion     string
	ArchiveBucket string
	ArchivePrefix string

	RateLimitPerMinute int64
	AllowedOrigins     []string

	// Rendering
	FontDir   string
	ThemeFile string
	OutputDir string
	Theme     pdfdoc.Theme
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttlMinutes := intOr("RECEIPT_CACHE_TTL_MINUTES", 30)
	rate := intOr("RATE_LIMIT_PER_MINUTE", 60)

	cfg := &Config{
		Port: envOr("PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTAccessSecret: os.Getenv("JWT_ACCESS_SECRET"),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         redisDB,
		ReceiptCacheTTL: time.Duration(ttlMinutes) * time.Minute,

		KafkaBrokers:   splitList(os.Getenv("KAFKA_BROKERS")),
		DocumentsTopic: envOr("KAFKA_DOCUMENTS_TOPIC", "donation-documents"),

		AWSRegion:     envOr("AWS_REGION", "ap-south-1"),
		ArchiveBucket: os.Getenv("DOCUMENTS_BUCKET"),
		ArchivePrefix: envOr("DOCUMENTS_PREFIX", "donation-documents"),

		RateLimitPerMinute: int64(rate),
		AllowedOrigins:     splitList(envOr("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),

		FontDir:   os.Getenv("FONT_DIR"),
		ThemeFile: os.Getenv("THEME_FILE"),
		OutputDir: envOr("OUTPUT_DIR", "./documents"),
		Theme:     pdfdoc.DefaultTheme(),
	}

	if cfg.ThemeFile != "" {
		theme, err := LoadTheme(cfg.ThemeFile)
		if err != nil {
			log.Warn("⚠️ Theme file ignored", "path", cfg.ThemeFile, "err", err)
		} else {
			cfg.Theme = theme
		}
	}

	return cfg
}

// Settings returns the renderer settings derived from the config.
func (c *Config) Settings() pdfdoc.Settings {
	s := pdfdoc.DefaultSettings()
	s.Theme = c.Theme
	s.FontDir = c.FontDir
	return s
}

// LoadTheme decodes a TOML theme file over the default theme, so a file
// only needs the keys it changes.
func LoadTheme(path string) (pdfdoc.Theme, error) {
	theme := pdfdoc.DefaultTheme()
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return pdfdoc.Theme{}, fmt.Errorf("decode theme %s: %w", path, err)
	}
	return theme, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
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
