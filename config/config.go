package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Agency content operations specifics
	Platform       PlatformConfig
	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig
	Imports        ImportsConfig
	Auth           AuthConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlatformConfig points at the external platform REST API that owns
// persistence for tasks and recurring templates.
type PlatformConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing deep links
	CacheSize   int    // LRU size for the recurring-template read cache
}

type SchedulerConfig struct {
	Enabled  bool
	Interval string // cron @every interval, e.g. "5m"
	Timezone string // IANA timezone for calendar-day arithmetic
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type ImportsConfig struct {
	MaxTasksPerDay  int
	RateLimitPerMin int
}

type AuthConfig struct {
	AccessToken string // static bearer token for service endpoints
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Platform.URL = viper.GetString("platform.url")
	cfg.Platform.AccessToken = viper.GetString("platform.access_token")
	cfg.Platform.ExternalURL = viper.GetString("platform.external_url")
	cfg.Platform.CacheSize = viper.GetInt("platform.cache_size")
	if platformURL := viper.GetString("platform_url"); platformURL != "" {
		cfg.Platform.URL = platformURL
	}
	if platformToken := viper.GetString("platform_access_token"); platformToken != "" {
		cfg.Platform.AccessToken = platformToken
	}
	// If external URL not set, default to internal URL
	if cfg.Platform.ExternalURL == "" {
		cfg.Platform.ExternalURL = cfg.Platform.URL
	}

	cfg.Scheduler.Enabled = viper.GetBool("scheduler.enabled")
	cfg.Scheduler.Interval = viper.GetString("scheduler.interval")
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Imports.MaxTasksPerDay = viper.GetInt("imports.max_tasks_per_day")
	cfg.Imports.RateLimitPerMin = viper.GetInt("imports.rate_limit_per_min")

	cfg.Auth.AccessToken = viper.GetString("auth.access_token")
	if authToken := viper.GetString("auth_access_token"); authToken != "" {
		cfg.Auth.AccessToken = authToken
	}

	if cfg.Platform.URL == "" {
		return nil, fmt.Errorf("platform.url is required - set it in config.yaml or PLATFORM_URL")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("platform.cache_size", 256)
	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.interval", "5m")
	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("imports.max_tasks_per_day", 10)
	viper.SetDefault("imports.rate_limit_per_min", 60)
}
