package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the root configuration, read once at process start. Credentials
// and the session secret are always injected from the environment; there are
// no baked-in defaults for them.
type Config struct {
	Environment string         `mapstructure:"environment" validate:"required,oneof=development production"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Site        SiteConfig     `mapstructure:"site"`
	Admin       AdminConfig    `mapstructure:"admin"`
	Session     SessionConfig  `mapstructure:"session"`
	Log         LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

// DatabaseConfig points at the sqlite file. An empty path means no database
// binding: the server runs entirely on fallback content.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type SiteConfig struct {
	Title  string `mapstructure:"title" validate:"required"`
	Author string `mapstructure:"author" validate:"required"`
}

type AdminConfig struct {
	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
}

type SessionConfig struct {
	// Secret is the opaque marker issued to the browser after login.
	Secret string `mapstructure:"secret" validate:"required,min=16"`
	Secure bool   `mapstructure:"secure"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.path", "blog.db")
	v.SetDefault("site.title", "Paul's Blog")
	v.SetDefault("site.author", "Paul")
	v.SetDefault("session.secure", true)
	v.SetDefault("log.level", "info")
}

// loadConfig reads configuration with precedence env > defaults and returns
// a validated Config.
func loadConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// An explicitly empty value must count as set, so BLOG_DATABASE_PATH=""
	// can select fallback mode.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so the
	// secret-bearing keys without defaults are bound explicitly.
	for _, key := range []string{"admin.username", "admin.password", "session.secret"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
