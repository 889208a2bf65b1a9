package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port  string // サーバーポート（8080）
	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）

	DatabaseURL      string // あれば最優先
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret string        // JWT署名シークレット
	AccessTTL time.Duration // 管理者トークンの有効期限

	// 初回起動時に作る管理者
	AdminEmail    string
	AdminPassword string

	// 注文を受けるWhatsApp番号（国番号付き、数字のみ）
	WhatsAppNumber string

	SessionIdleTTL       time.Duration // 0なら期限なし
	SessionSweepInterval time.Duration
	CookieSecure         bool

	Storage StorageConfig
}

// 画像アップロード先
type StorageConfig struct {
	Provider string // s3 / cloudinary

	S3Bucket    string
	S3Region    string
	S3Endpoint  string // MinIOなどS3互換
	S3AccessKey string
	S3SecretKey string
	S3BaseURL   string // 公開URLのprefix（CDN）

	CloudinaryURL    string
	CloudinaryFolder string

	MaxImageBytes int64
}

const defaultWhatsAppNumber = "919629323252"

// Loadは環境変数
func Load() (Config, error) {
	pgPort, err := envInt("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	accessTTL, err := envDuration("ACCESS_TOKEN_TTL", 15*time.Minute)
	if err != nil {
		return Config{}, err
	}
	idleTTL, err := envDuration("SESSION_IDLE_TTL", 24*time.Hour)
	if err != nil {
		return Config{}, err
	}
	sweep, err := envDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute)
	if err != nil {
		return Config{}, err
	}
	maxMB, err := envInt("MAX_IMAGE_MB", 5)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:  getenv("PORT", "8080"),
		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: os.Getenv("FE_URL"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "freshcart"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		AccessTTL: accessTTL,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		WhatsAppNumber: digitsOnly(getenv("WHATSAPP_NUMBER", defaultWhatsAppNumber)),

		SessionIdleTTL:       idleTTL,
		SessionSweepInterval: sweep,
		CookieSecure:         envBool("COOKIE_SECURE", false),

		Storage: StorageConfig{
			Provider:         strings.ToLower(getenv("STORAGE_PROVIDER", "s3")),
			S3Bucket:         os.Getenv("S3_BUCKET"),
			S3Region:         getenv("S3_REGION", "ap-south-1"),
			S3Endpoint:       os.Getenv("S3_ENDPOINT"),
			S3AccessKey:      os.Getenv("S3_ACCESS_KEY"),
			S3SecretKey:      os.Getenv("S3_SECRET_KEY"),
			S3BaseURL:        os.Getenv("S3_BASE_URL"),
			CloudinaryURL:    os.Getenv("CLOUDINARY_URL"),
			CloudinaryFolder: getenv("CLOUDINARY_FOLDER", "product-images"),
			MaxImageBytes:    int64(maxMB) << 20,
		},
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.WhatsAppNumber == "" {
		return Config{}, fmt.Errorf("WHATSAPP_NUMBER must contain digits")
	}
	switch cfg.Storage.Provider {
	case "s3":
		if cfg.Storage.S3Bucket == "" {
			return Config{}, fmt.Errorf("S3_BUCKET is required")
		}
	case "cloudinary":
		if cfg.Storage.CloudinaryURL == "" {
			return Config{}, fmt.Errorf("CLOUDINARY_URL is required")
		}
	default:
		return Config{}, fmt.Errorf("STORAGE_PROVIDER must be s3 or cloudinary")
	}
	if (cfg.AdminEmail == "") != (cfg.AdminPassword == "") {
		return Config{}, fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}

	return cfg, nil
}

// DSN はgorm/postgres用の接続文字列。
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod" || c.GoEnv == "production"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
