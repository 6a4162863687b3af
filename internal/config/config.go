// config предоставляет структуру конфигурации dashboard-сервиса
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
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
	Env      string         `yaml:"env"      env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	NewsAPI  NewsAPIConfig  `yaml:"newsapi"`
	Sources  SourcesConfig  `yaml:"sources"`
	Limits   LimitsConfig   `yaml:"limits"`
	Debounce DebounceConfig `yaml:"debounce"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки локального хранилища (sqlite-файл).
type DBConfig struct {
	Path string `yaml:"path" env:"DB_PATH" env-default:"dashboard.db"`
}

// NewsAPIConfig — параметры внешнего новостного API.
//
// Пустой APIKey (или плейсхолдер из .env.example) переводит адаптер
// в режим mock-данных без обращения к сети.
type NewsAPIConfig struct {
	APIKey   string `yaml:"api_key"  env:"NEWS_API_KEY"`
	BaseURL  string `yaml:"base_url" env:"NEWS_API_BASE_URL" env-default:"https://newsapi.org/v2"`
	Language string `yaml:"language" env:"NEWS_API_LANGUAGE" env-default:"en"`
}

// SourcesConfig — параметры mock-источников social/recommendation.
type SourcesConfig struct {
	// MockLatency — искусственная задержка mock-источников (эмуляция сети).
	MockLatency time.Duration `yaml:"mock_latency" env:"MOCK_LATENCY" env-default:"300ms"`
}

// LimitsConfig — серверные лимиты на выдачу.
type LimitsConfig struct {
	// Применяется при запросе с page_size=0.
	Default int `yaml:"default" env:"DEFAULT_PAGE_SIZE" env-default:"10"`
	// Верхняя граница для page_size.
	Max int `yaml:"max" env:"MAX_PAGE_SIZE" env-default:"100"`
}

// DebounceConfig — квант дебаунса поисковых пересчётов.
type DebounceConfig struct {
	Interval time.Duration `yaml:"interval" env:"DEBOUNCE_INTERVAL" env-default:"500ms"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
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
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	if c.NewsAPI.BaseURL == "" {
		return fmt.Errorf("newsapi.base_url is required")
	}
	if c.Sources.MockLatency < 0 {
		return fmt.Errorf("sources.mock_latency must be >= 0")
	}
	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	if c.Debounce.Interval <= 0 {
		return fmt.Errorf("debounce.interval must be > 0")
	}
	return nil
}
