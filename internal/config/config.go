package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	Secret      string `yaml:"secret"`
	Issuer      string `yaml:"issuer"`
	TTL         string `yaml:"ttl"`
	RememberTTL string `yaml:"remember_ttl"`
}

type LockoutConfig struct {
	MaxAttempts int    `yaml:"max_attempts"`
	Window      string `yaml:"window"`
}

type SeedConfig struct {
	DefaultPIN string `yaml:"default_pin"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Lockout  LockoutConfig  `yaml:"lockout"`
	Seed     SeedConfig     `yaml:"seed"`
}

type Config struct {
	Port               string
	GinMode            string
	DSN                string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	SessionSecret      string
	SessionIssuer      string
	SessionTTL         time.Duration
	RememberTTL        time.Duration
	LockoutMaxAttempts int
	LockoutWindow      time.Duration
	DefaultPIN         string
	CookieSecure       bool
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	rememberTTL, err := time.ParseDuration(configFile.Session.RememberTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid remember-me TTL: %w", err)
	}

	lockoutWindow, err := time.ParseDuration(configFile.Lockout.Window)
	if err != nil {
		return nil, fmt.Errorf("invalid lockout window: %w", err)
	}

	ginMode := env("GIN_MODE", configFile.App.GinMode)

	return &Config{
		Port:               fmt.Sprintf("%d", configFile.App.Port),
		GinMode:            ginMode,
		DSN:                env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:          env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:      configFile.Redis.Password,
		RedisDB:            configFile.Redis.DB,
		SessionSecret:      env("SESSION_SECRET", configFile.Session.Secret),
		SessionIssuer:      configFile.Session.Issuer,
		SessionTTL:         sessionTTL,
		RememberTTL:        rememberTTL,
		LockoutMaxAttempts: configFile.Lockout.MaxAttempts,
		LockoutWindow:      lockoutWindow,
		DefaultPIN:         env("SAHASRARA_PIN", configFile.Seed.DefaultPIN),
		CookieSecure:       ginMode == "release",
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
