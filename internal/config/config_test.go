package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:        DefaultBaseURL,
			UserAgent:      DefaultUserAgent,
			TimeoutSeconds: 30,
			Difficulties:   DefaultDifficulties,
		},
		Ingest: IngestConfig{
			Concurrency:   8,
			AudioFormat:   "mpeg",
			DownloadMedia: true,
			Supervisor: SupervisorConfig{
				MaxAttempts:    5,
				BackoffSeconds: 60,
			},
		},
		Database: DatabaseConfig{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     3306,
			Database: "wanikani",
			Username: "user",
			Path:     "wanikani.db",
		},
		Media: MediaConfig{
			Driver:    "local",
			Directory: "output",
		},
		Metrics:  MetricsConfig{Address: ":9090"},
		Schedule: ScheduleConfig{Cron: "@daily"},
		Export:   ExportConfig{Directory: filepath.Join("output", "export")},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:            "no config file uses defaults",
			useExplicitPath: false,
			want:            defaultConfig,
		},
		{
			name: "sqlite database with restricted tiers",
			configContent: `source:
  difficulties: [pleasant, painful]
ingest:
  concurrency: 2
  audio_format: webm
database:
  driver: sqlite3
  path: data/wanikani.db
media:
  driver: none
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Source.Difficulties = []string{"pleasant", "painful"}
				cfg.Ingest.Concurrency = 2
				cfg.Ingest.AudioFormat = "webm"
				cfg.Database.Driver = "sqlite3"
				cfg.Database.Path = "data/wanikani.db"
				cfg.Media.Driver = "none"
				return cfg
			},
		},
		{
			name: "secrets are read from the environment",
			configContent: `media:
  driver: s3
  s3:
    bucket: wanikani-media
    region: eu-central-1
`,
			useExplicitPath: true,
			env: map[string]string{
				"DB_PASSWORD":   "secret",
				"S3_ACCESS_KEY": "access",
				"S3_SECRET_KEY": "s3secret",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Password = "secret"
				cfg.Media.Driver = "s3"
				cfg.Media.S3 = S3Config{
					Bucket:    "wanikani-media",
					Region:    "eu-central-1",
					AccessKey: "access",
					SecretKey: "s3secret",
				}
				return cfg
			},
		},
		{
			name: "unknown difficulty is rejected",
			configContent: `source:
  difficulties: [pleasant, nightmare]
`,
			useExplicitPath:   true,
			wantErrorContains: []string{"invalid configuration", "difficulties[1]"},
		},
		{
			name: "unsupported audio format is rejected",
			configContent: `ingest:
  audio_format: ogg
`,
			useExplicitPath:   true,
			wantErrorContains: []string{"audio_format"},
		},
		{
			name: "missing template file is rejected",
			configContent: `export:
  template: does/not/exist.tmpl
`,
			useExplicitPath:   true,
			wantErrorContains: []string{"template must be an existing and readable file"},
		},
		{
			name:              "invalid YAML format",
			configContent:     "source: [unclosed",
			useExplicitPath:   true,
			wantErrorContains: []string{"could not be read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DB_PASSWORD", "S3_ACCESS_KEY", "S3_SECRET_KEY", "WANIKANI_BASE_URL"} {
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			tempDir := t.TempDir()
			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}
