package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL   = "https://www.wanikani.com"
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/39.0.2171.95 Safari/537.36"
)

// DefaultDifficulties is the fixed tier order of the listing pages.
var DefaultDifficulties = []string{"pleasant", "painful", "death", "hell", "paradise", "reality"}

type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Ingest   IngestConfig   `mapstructure:"ingest"`
	Database DatabaseConfig `mapstructure:"database"`
	Media    MediaConfig    `mapstructure:"media"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Export   ExportConfig   `mapstructure:"export"`
}

type SourceConfig struct {
	BaseURL        string            `mapstructure:"base_url" validate:"required,url"`
	UserAgent      string            `mapstructure:"user_agent" validate:"required"`
	Headers        map[string]string `mapstructure:"headers"`
	TimeoutSeconds int               `mapstructure:"timeout_seconds" validate:"min=1"`
	Difficulties   []string          `mapstructure:"difficulties" validate:"required,min=1,dive,oneof=pleasant painful death hell paradise reality"`
}

type IngestConfig struct {
	Concurrency   int              `mapstructure:"concurrency" validate:"min=1"`
	AudioFormat   string           `mapstructure:"audio_format" validate:"oneof=mpeg webm"`
	DownloadMedia bool             `mapstructure:"download_media"`
	Supervisor    SupervisorConfig `mapstructure:"supervisor"`
}

type SupervisorConfig struct {
	MaxAttempts    uint `mapstructure:"max_attempts" validate:"min=1"`
	BackoffSeconds int  `mapstructure:"backoff_seconds" validate:"min=0"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite3"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type MediaConfig struct {
	Driver    string   `mapstructure:"driver" validate:"oneof=none local s3"`
	Directory string   `mapstructure:"directory" validate:"required_if=Driver local"`
	S3        S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint" validate:"omitempty,url"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

type ScheduleConfig struct {
	Cron string `mapstructure:"cron" validate:"required"`
}

type ExportConfig struct {
	Directory string `mapstructure:"directory"`
	Template  string `mapstructure:"template" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wanikani-parser")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("source.base_url", DefaultBaseURL)
	v.SetDefault("source.user_agent", DefaultUserAgent)
	v.SetDefault("source.timeout_seconds", 30)
	v.SetDefault("source.difficulties", DefaultDifficulties)
	v.SetDefault("ingest.concurrency", 8)
	v.SetDefault("ingest.audio_format", "mpeg")
	v.SetDefault("ingest.download_media", true)
	v.SetDefault("ingest.supervisor.max_attempts", 5)
	v.SetDefault("ingest.supervisor.backoff_seconds", 60)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wanikani")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.path", "wanikani.db")
	v.SetDefault("media.driver", "local")
	v.SetDefault("media.directory", "output")
	v.SetDefault("metrics.address", ":9090")
	v.SetDefault("schedule.cron", "@daily")
	v.SetDefault("export.directory", filepath.Join("output", "export"))
	// Template is optional - the embedded deck template is used otherwise
	v.SetDefault("export.template", "")

	if err := v.BindEnv("source.base_url", "WANIKANI_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind WANIKANI_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	// S3 credentials come from the environment only
	if err := v.BindEnv("media.s3.access_key", "S3_ACCESS_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind S3_ACCESS_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("media.s3.secret_key", "S3_SECRET_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind S3_SECRET_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
