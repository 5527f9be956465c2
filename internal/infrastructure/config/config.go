package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	S3        S3Config
	Storage   StorageConfig
	Upload    UploadConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// JWTConfig protects the upload endpoints. An empty secret disables auth.
type JWTConfig struct {
	SecretKey      string        `envconfig:"JWT_SECRET_KEY"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"15m"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string `envconfig:"S3_PUBLIC_URL"`
}

// StorageConfig selects the storage driver. For the local driver PublicURL
// serves LocalRoot, which defaults to the upload path.
type StorageConfig struct {
	Driver    string `envconfig:"STORAGE_DRIVER" default:"local"`
	PublicURL string `envconfig:"STORAGE_PUBLIC_URL"`
	LocalRoot string `envconfig:"STORAGE_LOCAL_ROOT"`
}

func (c *StorageConfig) defaultRoot(uploadPath string) {
	if c.LocalRoot == "" {
		c.LocalRoot = uploadPath
	}
}

// UploadConfig holds the defaults applied to every upload. Requests may
// override Dimensions, ResizeMode and UniqueToken.
type UploadConfig struct {
	Path        string   `envconfig:"UPLOAD_PATH" default:"uploads"`
	UniqueToken string   `envconfig:"UPLOAD_UNIQUE_TOKEN"`
	Dimensions  []string `envconfig:"UPLOAD_DIMENSIONS"`
	ResizeMode  string   `envconfig:"UPLOAD_RESIZE_MODE" default:"both"`
	Extensions  []string `envconfig:"UPLOAD_EXTENSIONS" default:"jpg,jpeg,png,gif"`
	MaxSize     int64    `envconfig:"UPLOAD_MAX_SIZE" default:"10485760"`
	MaxSide     int      `envconfig:"UPLOAD_MAX_SIDE" default:"8192"`
	TempDir     string   `envconfig:"UPLOAD_TEMP_DIR"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"60"`
}

type TelemetryConfig struct {
	Enabled      bool          `envconfig:"OTEL_ENABLED" default:"false"`
	GRPCEndpoint string        `envconfig:"OTEL_COLLECTOR_GRPC_ENDPOINT" default:"localhost:4317"`
	Interval     time.Duration `envconfig:"OTEL_EXPORT_INTERVAL" default:"10s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.Storage.defaultRoot(cfg.Upload.Path)
	return &cfg, nil
}

// CLIConfig is the subset used by the command line tool, which runs without
// a database or HTTP server.
type CLIConfig struct {
	Upload  UploadConfig
	Storage StorageConfig
	S3      S3Config
	Log     LogConfig
	JWT     JWTConfig
}

func LoadCLI() (*CLIConfig, error) {
	var cfg CLIConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.Storage.defaultRoot(cfg.Upload.Path)
	return &cfg, nil
}
