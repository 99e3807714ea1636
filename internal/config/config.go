package config

import "time"

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	App      AppConfig      `env-prefix:"APP_"`
	HTTP     HTTPConfig     `env-prefix:"HTTP_"`
	GRPC     GRPCConfig     `env-prefix:"GRPC_"`
	Database DatabaseConfig `env-prefix:"DB_"`
	Auth     AuthConfig     `env-prefix:"AUTH_"`
	Web      WebConfig      `env-prefix:"WEB_"`
}

type HTTPConfig struct {
	Addr string `env:"ADDR" env-default:":8081"`
}

type AppConfig struct {
	LogLevel        string `env:"LOG_LEVEL" env-default:"info"`
	Pretty          bool   `env:"PRETTY" env-default:"false"`
	Storage         string `env:"STORAGE" env-default:"postgres"`
	StrictOwnership bool   `env:"STRICT_OWNERSHIP" env-default:"false"`
}

type GRPCConfig struct {
	Addr                 string        `env:"ADDR" env-default:":50051"`
	KeepaliveTime        time.Duration `env:"KEEPALIVE_TIME" env-default:"60s"`
	KeepaliveTimeout     time.Duration `env:"KEEPALIVE_TIMEOUT" env-default:"30s"`
	MaxConcurrentStreams uint32        `env:"MAX_CONCURRENT_STREAMS" env-default:"50"`
	HealthInterval       time.Duration `env:"HEALTH_INTERVAL" env-default:"10s"`
}

type DatabaseConfig struct {
	Port          string `env:"PORT" env-default:"5432"`
	Host          string `env:"HOST" env-default:"localhost"`
	Name          string `env:"NAME" env-default:"postgres"`
	User          string `env:"USER" env-default:"user"`
	Password      string `env:"PASSWORD"`
	MaxConns      int32  `env:"MAX_CONNS" env-default:"5"`
	RetryAttempts uint   `env:"RETRY_ATTEMPTS" env-default:"5"`
}

type AuthConfig struct {
	Secret       string        `env:"SECRET" env-required:"true"`
	SessionTTL   time.Duration `env:"SESSION_TTL" env-default:"12h"`
	CookieName   string        `env:"COOKIE_NAME" env-default:"notes_session"`
	CookieSecure bool          `env:"COOKIE_SECURE" env-default:"false"`

	// Account created at startup when both are set. An existing account is left as is.
	BootstrapUsername string `env:"BOOTSTRAP_USERNAME"`
	BootstrapPassword string `env:"BOOTSTRAP_PASSWORD"`
}

type WebConfig struct {
	NotesPath string `env:"NOTES_PATH" env-default:"/smart/notes"`
	LoginURL  string `env:"LOGIN_URL" env-default:"/login"`
}
