package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Worker   WorkerConfig
	Overpass OverpassConfig
	Insights InsightsConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	MetricsCacheTTL time.Duration
	QueryCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	BatchSize         int
}

type OverpassConfig struct {
	URL        string
	Timeout    time.Duration
	RetryPause time.Duration
}

type InsightsConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type StorageConfig struct {
	MediaRoot string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			MetricsCacheTTL: time.Duration(viper.GetInt("METRICS_CACHE_TTL")) * time.Second,
			QueryCacheTTL:   time.Duration(viper.GetInt("QUERY_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			BatchSize:         viper.GetInt("WORKER_BATCH_SIZE"),
		},
		Overpass: OverpassConfig{
			URL:        viper.GetString("OVERPASS_URL"),
			Timeout:    time.Duration(viper.GetInt("OVERPASS_TIMEOUT")) * time.Second,
			RetryPause: time.Duration(viper.GetInt("OVERPASS_RETRY_PAUSE")) * time.Second,
		},
		Insights: InsightsConfig{
			APIKey:  viper.GetString("INSIGHTS_API_KEY"),
			Model:   viper.GetString("INSIGHTS_MODEL"),
			BaseURL: viper.GetString("INSIGHTS_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("INSIGHTS_TIMEOUT")) * time.Second,
		},
		Storage: StorageConfig{
			MediaRoot: viper.GetString("MEDIA_ROOT"),
		},
	}

	// Set default values if not provided
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "registry-refresh-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 10
	}
	if cfg.Overpass.URL == "" {
		cfg.Overpass.URL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.Timeout == 0 {
		cfg.Overpass.Timeout = 60 * time.Second
	}
	if cfg.Overpass.RetryPause == 0 {
		cfg.Overpass.RetryPause = 2 * time.Second
	}
	if cfg.Insights.Model == "" {
		cfg.Insights.Model = "gemini-2.0-flash"
	}
	if cfg.Insights.BaseURL == "" {
		cfg.Insights.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Insights.Timeout == 0 {
		cfg.Insights.Timeout = 30 * time.Second
	}
	if cfg.Storage.MediaRoot == "" {
		cfg.Storage.MediaRoot = "./media/scenes"
	}
	if cfg.Cache.MetricsCacheTTL == 0 {
		cfg.Cache.MetricsCacheTTL = 10 * time.Minute
	}
	if cfg.Cache.QueryCacheTTL == 0 {
		cfg.Cache.QueryCacheTTL = 5 * time.Minute
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
