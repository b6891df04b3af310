package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"blog-backend/internal/shared/access"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config chứa toàn bộ application configuration
// Thứ tự ưu tiên: environment variables > file TOML (CONFIG_FILE) > default
type Config struct {
	App      AppConfig      `toml:"app"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	JWT      JWTConfig      `toml:"jwt"`
	Blob     BlobConfig     `toml:"blob"`
	MinIO    MinIOConfig    `toml:"minio"`
	Admin    AdminConfig    `toml:"admin"`
	Access   AccessConfig   `toml:"access"`
}

type AppConfig struct {
	Name        string `toml:"name"`
	Environment string `toml:"environment"` // development, staging, production
	Port        string `toml:"port"`
	Version     string `toml:"version"`
	// BasePath là prefix khi chạy sau reverse proxy, dùng khi build image URL
	BasePath string `toml:"base_path"`
}

type DatabaseConfig struct {
	Host              string        `toml:"host"`
	Port              int           `toml:"port"`
	User              string        `toml:"user"`
	Password          string        `toml:"password"`
	Name              string        `toml:"name"`
	SSLMode           string        `toml:"ssl_mode"`
	MaxConns          int           `toml:"max_conns"`
	MinConns          int           `toml:"min_conns"`
	MaxConnLifetime   time.Duration `toml:"max_conn_lifetime"`
	MaxConnIdleTime   time.Duration `toml:"max_conn_idle_time"`
	HealthCheckPeriod time.Duration `toml:"health_check_period"`
	MaxRetries        int           `toml:"max_retries"`
	RetryDelay        time.Duration `toml:"retry_delay"`
	ConnectTimeout    time.Duration `toml:"connect_timeout"`
	AutoMigrate       bool          `toml:"auto_migrate"`
}

type RedisConfig struct {
	Enabled  bool          `toml:"enabled"`
	Host     string        `toml:"host"`
	Password string        `toml:"password"`
	DB       int           `toml:"db"`
	TTL      time.Duration `toml:"ttl"`
}

type JWTConfig struct {
	Secret   string `toml:"secret"`
	Issuer   string `toml:"issuer"`
	Audience string `toml:"audience"`
}

// BlobConfig chọn nơi lưu file ảnh: "local" hoặc "minio"
type BlobConfig struct {
	Driver   string `toml:"driver"`
	LocalDir string `toml:"local_dir"`
}

type MinIOConfig struct {
	Endpoint  string `toml:"endpoint"`   // localhost:9000
	AccessKey string `toml:"access_key"` // minioadmin
	SecretKey string `toml:"secret_key"` // minioadmin
	Bucket    string `toml:"bucket"`     // blog-images
	UseSSL    bool   `toml:"use_ssl"`    // false for local
	// PublicURL overrides the scheme://endpoint prefix of object URLs
	PublicURL string `toml:"public_url"`
}

// AdminConfig: account được seed lúc startup với Reader + Writer
type AdminConfig struct {
	Email    string `toml:"email"`
	Password string `toml:"password"`
}

type AccessConfig struct {
	// Rules format: "category.create=public,image.upload=Reader"
	Rules  string        `toml:"rules"`
	Policy access.Policy `toml:"-"`
}

// Defaults trả về config mặc định cho local development
func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:        "Blog API",
			Environment: "development",
			Port:        "8080",
			Version:     "1.0.0",
		},
		Database: DatabaseConfig{
			Host:              "localhost",
			Port:              5432,
			User:              "blog",
			Password:          "secret",
			Name:              "blog_dev",
			SSLMode:           "disable",
			MaxConns:          25,
			MinConns:          5,
			MaxConnLifetime:   5 * time.Minute,
			MaxConnIdleTime:   time.Minute,
			HealthCheckPeriod: time.Minute,
			MaxRetries:        5,
			RetryDelay:        time.Second,
			ConnectTimeout:    10 * time.Second,
			AutoMigrate:       true,
		},
		Redis: RedisConfig{
			Enabled: true,
			Host:    "localhost:6379",
			TTL:     10 * time.Minute,
		},
		JWT: JWTConfig{
			Secret: defaultJWTSecret,
		},
		Blob: BlobConfig{
			Driver:   "local",
			LocalDir: "./Images",
		},
		MinIO: MinIOConfig{
			Endpoint:  "localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
			Bucket:    "blog-images",
		},
	}
}

// Load đọc config: defaults → CONFIG_FILE (TOML, optional) → environment variables
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	policy, err := access.ParsePolicy(cfg.Access.Rules)
	if err != nil {
		return nil, fmt.Errorf("invalid ACCESS_RULES: %w", err)
	}
	cfg.Access.Policy = policy

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	env := &envReader{}

	c.App.Name = env.getEnv("APP_NAME", c.App.Name)
	c.App.Environment = env.getEnv("APP_ENV", c.App.Environment)
	c.App.Port = env.getEnv("APP_PORT", c.App.Port)
	c.App.Version = env.getEnv("APP_VERSION", c.App.Version)
	c.App.BasePath = env.getEnv("APP_BASE_PATH", c.App.BasePath)

	c.Database.Host = env.getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = env.getEnvInt("DB_PORT", c.Database.Port)
	c.Database.User = env.getEnv("DB_USER", c.Database.User)
	c.Database.Password = env.getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = env.getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = env.getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.MaxConns = env.getEnvInt("DB_MAX_CONNECTIONS", c.Database.MaxConns)
	c.Database.MinConns = env.getEnvInt("DB_MIN_CONNECTIONS", c.Database.MinConns)
	c.Database.MaxConnLifetime = env.getEnvDuration("DB_MAX_CONN_LIFETIME", c.Database.MaxConnLifetime)
	c.Database.MaxConnIdleTime = env.getEnvDuration("DB_MAX_CONN_IDLE_TIME", c.Database.MaxConnIdleTime)
	c.Database.HealthCheckPeriod = env.getEnvDuration("DB_HEALTH_CHECK_PERIOD", c.Database.HealthCheckPeriod)
	c.Database.MaxRetries = env.getEnvInt("DB_MAX_RETRIES", c.Database.MaxRetries)
	c.Database.RetryDelay = env.getEnvDuration("DB_RETRY_DELAY", c.Database.RetryDelay)
	c.Database.ConnectTimeout = env.getEnvDuration("DB_CONNECT_TIMEOUT", c.Database.ConnectTimeout)
	c.Database.AutoMigrate = env.getEnvBool("DB_AUTO_MIGRATE", c.Database.AutoMigrate)

	c.Redis.Enabled = env.getEnvBool("REDIS_ENABLED", c.Redis.Enabled)
	c.Redis.Host = env.getEnv("REDIS_HOST", c.Redis.Host)
	c.Redis.Password = env.getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = env.getEnvInt("REDIS_DB", c.Redis.DB)
	c.Redis.TTL = env.getEnvDuration("REDIS_TTL", c.Redis.TTL)

	c.JWT.Secret = env.getEnv("JWT_SECRET", c.JWT.Secret)
	c.JWT.Issuer = env.getEnv("JWT_ISSUER", c.JWT.Issuer)
	c.JWT.Audience = env.getEnv("JWT_AUDIENCE", c.JWT.Audience)

	c.Blob.Driver = env.getEnv("BLOB_DRIVER", c.Blob.Driver)
	c.Blob.LocalDir = env.getEnv("BLOB_LOCAL_DIR", c.Blob.LocalDir)

	c.MinIO.Endpoint = env.getEnv("MINIO_ENDPOINT", c.MinIO.Endpoint)
	c.MinIO.AccessKey = env.getEnv("MINIO_ACCESS_KEY", c.MinIO.AccessKey)
	c.MinIO.SecretKey = env.getEnv("MINIO_SECRET_KEY", c.MinIO.SecretKey)
	c.MinIO.Bucket = env.getEnv("MINIO_BUCKET", c.MinIO.Bucket)
	c.MinIO.UseSSL = env.getEnvBool("MINIO_USE_SSL", c.MinIO.UseSSL)
	c.MinIO.PublicURL = env.getEnv("MINIO_PUBLIC_URL", c.MinIO.PublicURL)

	c.Admin.Email = env.getEnv("ADMIN_EMAIL", c.Admin.Email)
	c.Admin.Password = env.getEnv("ADMIN_PASSWORD", c.Admin.Password)

	c.Access.Rules = env.getEnv("ACCESS_RULES", c.Access.Rules)

	return errors.Join(env.errs...)
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.Blob.Driver {
	case "local":
		if c.Blob.LocalDir == "" {
			return fmt.Errorf("BLOB_LOCAL_DIR must be set for the local blob driver")
		}
	case "minio":
		if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
			return fmt.Errorf("MINIO_ENDPOINT and MINIO_BUCKET must be set for the minio blob driver")
		}
	default:
		return fmt.Errorf("unknown BLOB_DRIVER %q (expected local or minio)", c.Blob.Driver)
	}

	if c.Admin.Email != "" && c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set when ADMIN_EMAIL is set")
	}

	if c.App.BasePath != "" && !strings.HasPrefix(c.App.BasePath, "/") {
		return fmt.Errorf("APP_BASE_PATH must start with /")
	}

	// Production environment phải có JWT secret
	if c.IsProduction() {
		if c.JWT.Secret == defaultJWTSecret || c.JWT.Secret == "" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// envReader đọc env var với fallback, gom lỗi parse thay vì bỏ qua
type envReader struct {
	errs []error
}

func (r *envReader) getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func (r *envReader) getEnvInt(key string, fallback int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return value
}

func (r *envReader) getEnvBool(key string, fallback bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return value
}

func (r *envReader) getEnvDuration(key string, fallback time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return value
}
