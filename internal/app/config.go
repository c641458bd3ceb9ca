// Package app provides the application container wiring configuration,
// storage, repositories and services together.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/tams-cso/tams-club-cal-sub000/pkg/app"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/logger"
	"github.com/tams-cso/tams-club-cal-sub000/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig is the full application configuration.
type AppConfig struct {
	File     string         `yaml:"-"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	App      AppSettings    `yaml:"app"`
	Security SecurityConfig `yaml:"security"`
	Tracer   TracerConfig   `yaml:"tracer"`
}

type ServerConfig struct {
	// RunMode selects the gin mode.
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort is the listen address.
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout in seconds.
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout in seconds.
	WriteTimeout int `yaml:"write-timeout" default:"60"`
}

type LogConfig struct {
	// Level is a zapcore level name.
	Level string `yaml:"level" default:"info"`
	// File is the log file path; empty logs to stderr only.
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production switches the file sink to JSON output.
	Production bool `yaml:"production" default:"true"`
}

type DatabaseConfig struct {
	// Type is sqlite or mysql.
	Type string `yaml:"type" default:"sqlite"`
	// Path is the sqlite database file.
	Path        string `yaml:"path" default:"storage/database/db.sqlite3"`
	UserName    string `yaml:"username"`
	Password    string `yaml:"password"`
	Host        string `yaml:"host"`
	Name        string `yaml:"name"`
	TablePrefix string `yaml:"table-prefix"`
	// AutoMigrate runs schema migration on boot.
	AutoMigrate  bool   `yaml:"auto-migrate" default:"true"`
	Charset      string `yaml:"charset" default:"utf8mb4"`
	ParseTime    bool   `yaml:"parse-time" default:"true"`
	MaxIdleConns int    `yaml:"max-idle-conns" default:"10"`
	MaxOpenConns int    `yaml:"max-open-conns" default:"100"`
	// ConnMaxLifetime supports 30m, 1h, 7d formats.
	ConnMaxLifetime string `yaml:"conn-max-lifetime" default:"30m"`
}

type SecurityConfig struct {
	AuthTokenKey string `yaml:"auth-token-key" default:"club-cal-Auth-Token"`
	// TokenExpiry supports 7d, 24h, 30m formats.
	TokenExpiry string `yaml:"token-expiry" default:"30d"`
}

type AppSettings struct {
	DefaultPageSize       int `yaml:"default-page-size" default:"20"`
	MaxPageSize           int `yaml:"max-page-size" default:"100"`
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// ReservationRetention is how long ended reservations are kept before
	// the cleanup task prunes them.
	ReservationRetention string `yaml:"reservation-retention" default:"30d"`
	// CacheSweepSpec is the cron spec driving TTL cache eviction.
	CacheSweepSpec string `yaml:"cache-sweep-spec" default:"@every 5m"`
	// ReservationCleanupSpec is the cron spec for reservation pruning.
	ReservationCleanupSpec string `yaml:"reservation-cleanup-spec" default:"@daily"`
}

type TracerConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Header  string `yaml:"header" default:"X-Trace-ID"`
}

// LoadConfig reads, defaults and parses the YAML config at f.
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	c := new(AppConfig)
	c.File = realpath

	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "set default config failed")
	}

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	if err := yaml.Unmarshal(file, c); err != nil {
		return nil, realpath, errors.Wrap(err, "parse config file failed")
	}

	// Fill fields the YAML left at their zero value.
	if err := defaults.Set(c); err != nil {
		return nil, realpath, errors.Wrap(err, "re-set default config failed")
	}

	return c, realpath, nil
}

// Save writes the config back to its file.
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}
	if err := os.WriteFile(c.File, data, 0644); err != nil {
		return errors.Wrap(err, "write config file failed")
	}
	return nil
}

func (c *AppConfig) GetTokenExpiry() time.Duration {
	d, err := util.ParseDuration(c.Security.TokenExpiry)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

func (c *AppConfig) GetReservationRetention() time.Duration {
	d, err := util.ParseDuration(c.App.ReservationRetention)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

func (c *AppConfig) GetLoggerConfig() logger.Config {
	return logger.Config{
		Level:      c.Log.Level,
		File:       c.Log.File,
		Production: c.Log.Production,
	}
}

func (c *AppConfig) GetPaginationConfig() app.PaginationConfig {
	return app.PaginationConfig{
		DefaultPageSize: c.App.DefaultPageSize,
		MaxPageSize:     c.App.MaxPageSize,
	}
}
