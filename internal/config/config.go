package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port                 int           `envconfig:"PORT" default:"8080"`
	LogLevel             string        `envconfig:"LOG_LEVEL" default:"info"`
	Version              string        `envconfig:"VERSION" default:"dev"`
	SentinelName         string        `envconfig:"SENTINEL_NAME" default:"Sua Equipa"`
	SentinelCity         string        `envconfig:"SENTINEL_CITY" default:"Lobito"`
	SentinelContact      string        `envconfig:"SENTINEL_CONTACT" default:"admin@meu.com"`
	LeagueTitle          string        `envconfig:"LEAGUE_TITLE" default:"Football League Manager"`
	LeagueNotice         string        `envconfig:"LEAGUE_NOTICE" default:""`
	SessionKey           string        `envconfig:"SESSION_KEY" default:""`
	CSRFKey              string        `envconfig:"CSRF_KEY" default:""`
	CSRFEnabled          bool          `envconfig:"CSRF_ENABLED" default:"true"`
	SessionTTL           time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SessionSweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
	SessionMax           int           `envconfig:"SESSION_MAX" default:"1000"`
	CookieSecure         bool          `envconfig:"COOKIE_SECURE" default:"false"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
