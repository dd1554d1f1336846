package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Host     string         `mapstructure:"host" yaml:"host"`
	Port     string         `mapstructure:"port" yaml:"port"`
	Download DownloadConfig `mapstructure:"download" yaml:"download"`
	CORS     CORSConfig     `mapstructure:"cors" yaml:"cors"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

type DownloadConfig struct {
	OutDir            string `mapstructure:"out_dir" yaml:"out_dir"`
	MaxWorkers        int    `mapstructure:"max_workers" yaml:"max_workers"`
	AutoDeleteSeconds int    `mapstructure:"auto_delete_seconds" yaml:"auto_delete_seconds"`
	HistoryLimit      int    `mapstructure:"history_limit" yaml:"history_limit"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins" yaml:"origins"`
}

type LogConfig struct {
	Path          string `mapstructure:"path" yaml:"path"`
	Level         string `mapstructure:"level" yaml:"level"`
	IncludeStdout bool   `mapstructure:"include_stdout" yaml:"include_stdout"`
}

// Load reads configuration from an optional YAML file with TUBEGRAB_*
// environment overrides on top. A missing file is only an error when a path
// was explicitly requested; the defaults are a complete working setup.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = "config.yaml"
	}

	v := viper.New()

	// Set Defaults
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8000")
	v.SetDefault("download.out_dir", "./downloads")
	v.SetDefault("download.max_workers", 3)
	v.SetDefault("download.auto_delete_seconds", 300) // 5 min, matches retention window
	v.SetDefault("download.history_limit", 100)
	v.SetDefault("cors.origins", []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"http://localhost:3000",
	})
	v.SetDefault("log.path", "tubegrab.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.include_stdout", true)

	// Support Environment Variables
	v.SetEnvPrefix("TUBEGRAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.Download.OutDir == "" {
		c.Download.OutDir = "./downloads"
	}

	if c.Download.MaxWorkers <= 0 {
		// Default to a sane value
		c.Download.MaxWorkers = 3
	}

	if c.Download.AutoDeleteSeconds <= 0 {
		c.Download.AutoDeleteSeconds = 300
	}

	if c.Download.HistoryLimit <= 0 {
		c.Download.HistoryLimit = 100
	}

	return nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// AutoDeleteDelay returns the artifact retention window as a duration.
func (c *Config) AutoDeleteDelay() time.Duration {
	return time.Duration(c.Download.AutoDeleteSeconds) * time.Second
}
