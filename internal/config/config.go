package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	ProviderKindHTTP     = "http"
	ProviderKindPostgres = "postgres"
)

type DBConfig struct {
	DSN          string `yaml:"dsn"`
	MaxIdleConns int    `yaml:"maxIdleConns" validate:"gte=0"`
	MaxOpenConns int    `yaml:"maxOpenConns" validate:"gte=0"`
	MaxLifetime  int    `yaml:"maxLifetime" validate:"gte=0"`  // minutes
	QueryTimeout int    `yaml:"queryTimeout" validate:"gte=0"` // seconds
}

type PathsConfig struct {
	Users         string `yaml:"users" validate:"required,startswith=/"`
	Conversations string `yaml:"conversations" validate:"required,startswith=/"`
	Education     string `yaml:"education" validate:"required,startswith=/"`
	Notes         string `yaml:"notes" validate:"required,startswith=/"`
	Summary       string `yaml:"summary" validate:"required,startswith=/"`
}

type ProviderConfig struct {
	Kind       string      `yaml:"kind" validate:"oneof=http postgres"`
	BaseURL    string      `yaml:"baseURL" validate:"omitempty,url"`
	Token      string      `yaml:"token"`
	Timeout    int         `yaml:"timeout" validate:"gt=0"` // seconds
	RetryCount int         `yaml:"retryCount" validate:"gte=0,lte=10"`
	Paths      PathsConfig `yaml:"paths"`

	// ActiveWindow is the lookback, in days, for counting active users when reading from postgres.
	ActiveWindow int `yaml:"activeWindow" validate:"gte=0"`
}

type DashboardConfig struct {
	LatestNotes   int    `yaml:"latestNotes" validate:"gte=0,lte=100"`
	LabelLocation string `yaml:"labelLocation"`
}

type Config struct {
	Addr      string          `yaml:"addr" validate:"required"`
	Provider  ProviderConfig  `yaml:"provider"`
	DB        DBConfig        `yaml:"db"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr: ":8080",
		Provider: ProviderConfig{
			Kind:       ProviderKindHTTP,
			BaseURL:    "http://127.0.0.1:8000",
			Timeout:    10,
			RetryCount: 2,
			Paths: PathsConfig{
				Users:         "/stats/users",
				Conversations: "/stats/conversations",
				Education:     "/stats/education",
				Notes:         "/stats/notes",
				Summary:       "/stats/summary",
			},
			ActiveWindow: 30,
		},
		DB: DBConfig{
			MaxIdleConns: 10,
			MaxOpenConns: 20,
			MaxLifetime:  30,
			QueryTimeout: 10,
		},
		Dashboard: DashboardConfig{
			LatestNotes:   5,
			LabelLocation: "UTC",
		},
	}
}

// LoadYAMLConfig load config from filename in YAML format
func LoadYAMLConfig(filename string, cfg interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("ReadFile: %v", err)
	}
	return yaml.Unmarshal(data, cfg)
}

// InitConfig layers the YAML file (optional when configPath is empty) and the
// environment over DefaultConfig, then validates the result.
func InitConfig(configPath string) (*Config, error) {
	conf := DefaultConfig()

	if configPath != "" {
		if err := LoadYAMLConfig(configPath, conf); err != nil {
			return nil, err
		}
	}
	applyEnv(conf)

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func applyEnv(conf *Config) {
	if v := os.Getenv("STATS_PROVIDER_URL"); v != "" {
		conf.Provider.BaseURL = v
	}
	if v := os.Getenv("STATS_PROVIDER_TOKEN"); v != "" {
		conf.Provider.Token = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		conf.DB.DSN = v
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Provider.Kind == ProviderKindHTTP && c.Provider.BaseURL == "" {
		return fmt.Errorf("invalid config: provider.baseURL (or STATS_PROVIDER_URL) is required for the http provider")
	}
	if c.Provider.Kind == ProviderKindPostgres && c.DB.DSN == "" {
		return fmt.Errorf("invalid config: db.dsn (or POSTGRES_DSN) is required for the postgres provider")
	}
	if _, err := c.LabelLocation(); err != nil {
		return fmt.Errorf("invalid config: dashboard.labelLocation: %w", err)
	}
	return nil
}

func (c *Config) LabelLocation() (*time.Location, error) {
	if c.Dashboard.LabelLocation == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Dashboard.LabelLocation)
}

func (c *Config) ProviderTimeout() time.Duration {
	return time.Duration(c.Provider.Timeout) * time.Second
}

func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.DB.QueryTimeout) * time.Second
}

func (c *Config) ActiveWindow() time.Duration {
	return time.Duration(c.Provider.ActiveWindow) * 24 * time.Hour
}
