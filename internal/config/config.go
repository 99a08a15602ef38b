package config

import (
	"fmt"
	"net/url"

	// Load .env into the environment before viper reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`

	// Variant selects which record schema this deployment serves:
	// "candidate" or "student". Exactly one is active at a time.
	Variant string `mapstructure:"variant"`
}

type ServerConfig struct {
	Port      int    `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type DatabaseConfig struct {
	// URL, when set, wins over the discrete fields (hosted deployments).
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	PoolSize int    `mapstructure:"pool_size"`
}

// ConnString returns the PostgreSQL connection string.
func (d DatabaseConfig) ConnString() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, url.QueryEscape(d.Password), d.Host, d.Port, d.Name, d.SSLMode)
}

func Load() (*Config, error) {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../..")

	viper.SetDefault("server.port", 3001)
	viper.SetDefault("server.static_dir", "./web")
	viper.SetDefault("variant", "candidate")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "candidate_db")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.pool_size", 10)

	// Env names carried over from the original deployment.
	viper.BindEnv("server.port", "PORT")              //nolint:errcheck
	viper.BindEnv("variant", "APP_VARIANT")           //nolint:errcheck
	viper.BindEnv("database.url", "DATABASE_URL")     //nolint:errcheck
	viper.BindEnv("database.host", "PG_HOST")         //nolint:errcheck
	viper.BindEnv("database.port", "PG_PORT")         //nolint:errcheck
	viper.BindEnv("database.user", "PG_USER")         //nolint:errcheck
	viper.BindEnv("database.password", "PG_PASSWORD") //nolint:errcheck
	viper.BindEnv("database.name", "PG_DATABASE")     //nolint:errcheck

	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults cover a bare setup.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Variant != "candidate" && cfg.Variant != "student" {
		return nil, fmt.Errorf("unknown variant %q (want candidate or student)", cfg.Variant)
	}

	// Hosted databases behind DATABASE_URL require TLS.
	if cfg.Database.URL != "" && !hasSSLMode(cfg.Database.URL) {
		sep := "?"
		if u, err := url.Parse(cfg.Database.URL); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		cfg.Database.URL += sep + "sslmode=require"
	}

	return &cfg, nil
}

func hasSSLMode(connURL string) bool {
	u, err := url.Parse(connURL)
	if err != nil {
		return false
	}
	return u.Query().Get("sslmode") != ""
}
