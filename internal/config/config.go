package config

import "time"

type Config struct {
	App       AppConfig       `env-prefix:"APP_"`
	HTTP      HTTPConfig      `env-prefix:"HTTP_"`
	GRPC      GRPCConfig      `env-prefix:"GRPC_"`
	Database  DatabaseConfig  `env-prefix:"DB_"`
	Storage   StorageConfig   `env-prefix:"STORAGE_"`
	Auth      AuthConfig      `env-prefix:"AUTH_"`
	RateLimit RateLimitConfig `env-prefix:"RATE_LIMIT_"`
}

type HTTPConfig struct {
	Addr            string        `env:"ADDR" env-default:":8081"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"3s"`
}

type AppConfig struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"PRETTY" env-default:"false"`
}

type GRPCConfig struct {
	Addr                 string        `env:"ADDR" env-default:":50051"`
	KeepaliveTime        time.Duration `env:"KEEPALIVE_TIME" env-default:"60s"`
	KeepaliveTimeout     time.Duration `env:"KEEPALIVE_TIMEOUT" env-default:"30s"`
	MaxConcurrentStreams uint32        `env:"MAX_CONCURRENT_STREAMS" env-default:"50"`
}

type DatabaseConfig struct {
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"5"`
	MaxConns      int32  `env:"MAX_CONNS" env-default:"10"`
}

func (c DatabaseConfig) Address() string {
	return c.Host + ":" + c.Port
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type StorageConfig struct {
	Driver string `env:"DRIVER" env-default:"postgres"`
}

type AuthConfig struct {
	// UserHeader is set by the upstream auth proxy.
	UserHeader string `env:"USER_HEADER" env-default:"x-user-id"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RPS" env-default:"20"`
	Burst int     `env:"BURST" env-default:"40"`
}
