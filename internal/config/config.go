package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Redis      RedisConfig
	Catalog    CatalogConfig
	Validation ValidationConfig
	Report     ReportConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// CatalogConfig points at the remote taxonomy document.
type CatalogConfig struct {
	URL        string
	Timeout    time.Duration
	RetryCount int
	CacheTTL   time.Duration
	// File, when set, is read instead of URL.
	File string
}

type ValidationConfig struct {
	Workers           int
	PublicModuleTypes []string
	CodingModuleTypes []string
}

type ReportConfig struct {
	CacheTTL time.Duration
}

const DefaultCatalogURL = "https://nxtwave-assessments-backend-nxtwave-media-static.s3.ap-south-1.amazonaws.com/topin_config_prod/static/static_content.json"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.body_limit_mb", 50)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("redis.db", 0)

	v.SetDefault("catalog.url", DefaultCatalogURL)
	v.SetDefault("catalog.timeout", "20s")
	v.SetDefault("catalog.retry_count", 2)
	v.SetDefault("catalog.cache_ttl", "1h")

	v.SetDefault("validation.workers", 4)
	v.SetDefault("validation.public_module_types", []string{"MCQ", "Code Analysis"})
	v.SetDefault("validation.coding_module_types", []string{
		"Python Coding", "Web Coding", "SQL Coding", "Coding", "JS Coding", "DSA Coding",
	})

	v.SetDefault("report.cache_ttl", "30m")
}

// LoadConfig reads config.yaml (when present), .env and the environment.
// A missing config file is not an error; defaults apply.
func LoadConfig() (*Config, error) {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("./configs")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Catalog: CatalogConfig{
			URL:        v.GetString("catalog.url"),
			File:       v.GetString("catalog.file"),
			Timeout:    v.GetDuration("catalog.timeout"),
			RetryCount: v.GetInt("catalog.retry_count"),
			CacheTTL:   v.GetDuration("catalog.cache_ttl"),
		},
		Validation: ValidationConfig{
			Workers:           v.GetInt("validation.workers"),
			PublicModuleTypes: nameList(v, "validation.public_module_types"),
			CodingModuleTypes: nameList(v, "validation.coding_module_types"),
		},
		Report: ReportConfig{
			CacheTTL: v.GetDuration("report.cache_ttl"),
		},
	}

	if cfg.Catalog.URL == "" {
		return nil, fmt.Errorf("catalog.url must be set")
	}
	if cfg.Validation.Workers < 1 {
		cfg.Validation.Workers = 1
	}
	return cfg, nil
}

// nameList reads a list of names that may themselves contain spaces. YAML
// lists are taken as is; a plain string, as set from the environment, is
// split on commas.
func nameList(v *viper.Viper, key string) []string {
	var raw []string
	switch val := v.Get(key).(type) {
	case string:
		raw = strings.Split(val, ",")
	case []string:
		raw = val
	case []interface{}:
		for _, item := range val {
			raw = append(raw, fmt.Sprint(item))
		}
	default:
		return nil
	}

	names := make([]string, 0, len(raw))
	for _, name := range raw {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
