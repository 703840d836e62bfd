package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	APIPrefix      string        `mapstructure:"api_prefix"`
	CORSOrigins    []string      `mapstructure:"cors_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type DBConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	LogSQL          bool          `mapstructure:"log_sql"`
}

type AuthConfig struct {
	JWTSecret            string        `mapstructure:"jwt_secret"`
	SessionTTL           time.Duration `mapstructure:"session_ttl"`
	ProtectAPI           bool          `mapstructure:"protect_api"`
	BlacklistCleanupCron string        `mapstructure:"blacklist_cleanup_cron"`
	SecureCookie         bool          `mapstructure:"secure_cookie"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// =======================
// ENV LOADER
// =======================

// LoadDotEnv loads .env into the process environment. On Railway the
// platform injects variables directly, so the file is skipped.
func LoadDotEnv(log *zap.Logger) {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Info("running in Railway, using system environment")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system environment")
		return
	}
	log.Info(".env file loaded")
}

// Load resolves configuration: defaults, then an optional config file, then
// environment variables. path may be empty.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.api_prefix", "/api")
	v.SetDefault("server.cors_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.request_timeout", "5s")

	v.SetDefault("db.url", "")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_idle_time", "60s")
	v.SetDefault("db.conn_max_lifetime", "10m")
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("db.log_sql", false)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.session_ttl", "168h")
	v.SetDefault("auth.protect_api", false)
	v.SetDefault("auth.blacklist_cleanup_cron", "@daily")
	v.SetDefault("auth.secure_cookie", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// names the deployment platforms already use
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("server.api_prefix", "API_PREFIX")
	_ = v.BindEnv("server.cors_origins", "CORS_ORIGINS")
	_ = v.BindEnv("db.url", "DATABASE_URL", "DB_URL")
	_ = v.BindEnv("db.auto_migrate", "DB_AUTO_MIGRATE")
	_ = v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = v.BindEnv("auth.protect_api", "AUTH_PROTECT_API")
	_ = v.BindEnv("auth.secure_cookie", "AUTH_SECURE_COOKIE")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DB.URL) == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port must be within 1-65535, got %d", c.Server.Port)
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("config: JWT_SECRET must be at least 16 characters")
	}
	if c.Server.APIPrefix != "" && !strings.HasPrefix(c.Server.APIPrefix, "/") {
		c.Server.APIPrefix = "/" + c.Server.APIPrefix
	}
	return nil
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Server.Port)
}
