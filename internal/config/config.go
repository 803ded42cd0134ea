package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AdminConfig учётная запись администратора и параметры сессии
// Ключи cookie задаются в hex
type AdminConfig struct {
	Username          string `toml:"username"`
	PasswordHash      string `toml:"password_hash"`
	SessionTTLMinutes int    `toml:"session_ttl_minutes"`
	CookieHashKey     string `toml:"cookie_hash_key"`
	CookieBlockKey    string `toml:"cookie_block_key"`
	CookieSecure      bool   `toml:"cookie_secure"`
}

// SessionTTL время жизни сессии администратора
func (a AdminConfig) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// HashKey декодированный ключ подписи cookie
func (a AdminConfig) HashKey() []byte {
	key, _ := hex.DecodeString(a.CookieHashKey)
	return key
}

// BlockKey декодированный ключ шифрования cookie (nil, если не задан)
func (a AdminConfig) BlockKey() []byte {
	key, _ := hex.DecodeString(a.CookieBlockKey)
	return key
}

// Load читает .env (если есть), TOML файл и переменные окружения
// Порядок приоритета: env > файл > значения по умолчанию
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrReadConfig, err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon-reservations",
		},
		Admin: AdminConfig{
			Username:          "admin",
			SessionTTLMinutes: 24 * 60,
		},
	}
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"DB_PASSWORD":         &c.Database.Password,
		"ADMIN_USERNAME":      &c.Admin.Username,
		"ADMIN_PASSWORD_HASH": &c.Admin.PasswordHash,
		"SESSION_HASH_KEY":    &c.Admin.CookieHashKey,
		"SESSION_BLOCK_KEY":   &c.Admin.CookieBlockKey,
	}
	for name, target := range overrides {
		if value, ok := os.LookupEnv(name); ok && value != "" {
			*target = value
		}
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}
	if c.Admin.Username == "" {
		return fmt.Errorf("%w: admin.username is required", ErrInvalidConfig)
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("%w: admin.password_hash is required (generate one with `hash-password`)", ErrInvalidConfig)
	}
	if c.Admin.SessionTTLMinutes <= 0 {
		return fmt.Errorf("%w: admin.session_ttl_minutes must be positive", ErrInvalidConfig)
	}
	if _, err := hex.DecodeString(c.Admin.CookieHashKey); err != nil {
		return fmt.Errorf("%w: admin.cookie_hash_key must be hex: %v", ErrInvalidConfig, err)
	}
	block, err := hex.DecodeString(c.Admin.CookieBlockKey)
	if err != nil {
		return fmt.Errorf("%w: admin.cookie_block_key must be hex: %v", ErrInvalidConfig, err)
	}
	switch len(block) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("%w: admin.cookie_block_key must be 16, 24 or 32 bytes, got %d", ErrInvalidConfig, len(block))
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
