package config

import (
	"context"
	"log/slog"
	"os"
	"reflect"

	"github.com/mcuadros/go-defaults"
	"github.com/naoina/toml"
	"github.com/sethvargo/go-envconfig"
)

var configFile = ""

type Config struct {
	EnableSwagger bool `env:"BOOKMARK_SERVER_ENABLE_SWAGGER" default:"false"`
	EnablePprof   bool `env:"BOOKMARK_SERVER_ENABLE_PPROF" default:"false"`

	APIServer struct {
		Host string `env:"BOOKMARK_SERVER_HOST" default:"127.0.0.1"`
		Port int    `env:"BOOKMARK_SERVER_PORT" default:"8080"`
		// seconds to wait for in-flight requests on shutdown
		ShutdownTimeoutSec int `env:"BOOKMARK_SERVER_SHUTDOWN_TIMEOUT_SEC" default:"5"`
	}

	Database struct {
		// sqlite or pg
		Driver string `env:"BOOKMARK_DATABASE_DRIVER" default:"sqlite"`
		DSN    string `env:"BOOKMARK_DATABASE_DSN" default:"file:bookmark.sqlite"`
		// 0 means 1 for sqlite and the database/sql default for pg
		MaxOpenConns int  `env:"BOOKMARK_DATABASE_MAX_OPEN_CONNS" default:"0"`
		MaxIdleConns int  `env:"BOOKMARK_DATABASE_MAX_IDLE_CONNS" default:"0"`
		Debug        bool `env:"BOOKMARK_DATABASE_DEBUG" default:"false"`
	}

	Metrics struct {
		Enable bool `env:"BOOKMARK_SERVER_METRICS_ENABLE" default:"true"`
	}
}

func SetConfigFile(file string) {
	configFile = file
}

func LoadConfig() (*Config, error) {
	defer slog.Debug("end load config")
	slog.Debug("start load config")
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	toml.DefaultConfig.MissingField = func(typ reflect.Type, key string) error {
		return nil
	}

	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		err = toml.NewDecoder(f).Decode(cfg)
		if err != nil {
			return nil, err
		}
	}

	// Environment variables always win over the config file. Keys missing from both keep
	// the value of their default tag.
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:           cfg,
		DefaultOverwrite: true,
	})
	return cfg, err
}
