// config реализует конфигурацию content-service: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	DB        DBConfig        `yaml:"db"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Limits    LimitsConfig    `yaml:"limits"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// TimeoutConfig — сервисные таймауты (общий дедлайн обработки запроса).
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
	// Scan — дедлайн ручного сканирования из панели планировщика.
	Scan time.Duration `yaml:"scan" env:"SCAN_TIMEOUT" env-default:"1m"`
}

// HTTPConfig — REST API и служебные эндпойнты (/livez, /healthz, /metrics).
type HTTPConfig struct {
	Host     string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api/v1"`
}

// GRPCConfig — gRPC-сервер health-проверок.
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50060"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// DBConfig — настройки подключения к MongoDB.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// RedisConfig — кэш публичных выборок. Пустой URL отключает кэш.
type RedisConfig struct {
	URL    string        `yaml:"url" env:"REDIS_URL"`
	Prefix string        `yaml:"prefix" env:"REDIS_PREFIX" env-default:"content:"`
	TTL    time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1m"`
}

// AuthConfig — параметры выпуска/валидации токенов и учётка администратора.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	Issuer         string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"content-service"`
	Audience       []string      `yaml:"audience" env:"JWT_AUDIENCE" env-default:"admin-dashboard"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"1h"`
	// AdminEmail/AdminPasswordHash — единственная учётка дашборда (bcrypt-хэш).
	// Пустые значения отключают вход.
	AdminEmail        string `yaml:"admin_email" env:"ADMIN_EMAIL"`
	AdminPasswordHash string `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH"`
}

// SchedulerConfig — отложенная публикация новостей.
type SchedulerConfig struct {
	// Интервал периодической сверки черновиков с хранилищем.
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"10s"`
	// Дедлайн записи при срабатывании таймера отдельной новости.
	PublishTimeout time.Duration `yaml:"publish_timeout" env:"SCHEDULER_PUBLISH_TIMEOUT" env-default:"5s"`
	// StartPaused оставляет планировщик остановленным до команды из панели.
	StartPaused bool `yaml:"start_paused" env:"SCHEDULER_START_PAUSED"`
}

// LimitsConfig — лимиты на выдачу.
type LimitsConfig struct {
	// Latest — размер блока «последние новости», если limit не передан.
	Latest int `yaml:"latest" env:"LATEST_LIMIT" env-default:"3"`
	// Max — верхняя граница limit.
	Max int `yaml:"max" env:"MAX_LIMIT" env-default:"50"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	switch {
	case path != "":
		return fromFile(path)
	case os.Getenv("CONFIG_PATH") != "":
		return fromFile(os.Getenv("CONFIG_PATH"))
	}

	if _, err := os.Stat("local.yaml"); err == nil {
		return fromFile("local.yaml")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fromFile читает YAML, накладывает ENV и валидирует результат.
func fromFile(p string) (*Config, error) {
	if _, err := os.Stat(p); err != nil {
		return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(p, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to overlay env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	if (c.Auth.AdminEmail == "") != (c.Auth.AdminPasswordHash == "") {
		return fmt.Errorf("auth.admin_email and auth.admin_password_hash must be set together")
	}

	if c.Scheduler.Interval < 100*time.Millisecond {
		return fmt.Errorf("scheduler.interval must be at least 100ms")
	}

	if c.Scheduler.PublishTimeout <= 0 {
		return fmt.Errorf("scheduler.publish_timeout must be > 0")
	}

	if c.Redis.URL != "" && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 when redis.url is set")
	}

	if c.Limits.Latest <= 0 {
		return fmt.Errorf("limits.latest must be > 0")
	}

	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}

	if c.Limits.Latest > c.Limits.Max {
		return fmt.Errorf("limits.latest must be <= limits.max")
	}

	return nil
}
