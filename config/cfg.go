package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/ecomdash/analytics-api/internal/api/http"
	"github.com/ecomdash/analytics-api/internal/store"
	"github.com/ecomdash/analytics-api/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB          store.Config   `mapstructure:"postgres"`
	Logger      log.Config     `mapstructure:"logger"`
	HTTP        httpapi.Config `mapstructure:"http"`
	Environment string         `mapstructure:"environment"`
}

// LoadConfig loads the configuration from a file and/or environment
// variables. Environment variables take precedence over config file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/analytics-api")
		viper.AddConfigPath("/etc/analytics-api")
		// Config file is optional; env vars alone can carry the service.
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	applyDefaults(&config)

	// Assemble the DSN from the discrete DB_* variables the deployment sets
	// when no DSN is given directly.
	if config.DB.DSN == "" && config.DB.Host != "" {
		config.DB.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DB.Host, config.DB.Port, config.DB.User, config.DB.Password,
			config.DB.Database, config.DB.SSLMode)
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.HTTP.Port == "" {
		config.HTTP.Port = "8080"
	}
	if len(config.HTTP.AllowedOrigins) == 0 {
		config.HTTP.AllowedOrigins = []string{"*"}
	}
	if config.Environment == "" {
		config.Environment = "development"
	}
	if config.DB.Port == "" {
		config.DB.Port = "5432"
	}
	if config.DB.SSLMode == "" {
		config.DB.SSLMode = "require"
	}
}

// bindEnvVars binds environment variables to config keys. The DB_* names
// match what the dashboard's hosting already provides.
func bindEnvVars() {
	// Postgres
	viper.BindEnv("postgres.dsn", "POSTGRES_DSN")
	viper.BindEnv("postgres.host", "DB_HOST")
	viper.BindEnv("postgres.port", "DB_PORT")
	viper.BindEnv("postgres.user", "DB_USER")
	viper.BindEnv("postgres.password", "DB_PASSWORD")
	viper.BindEnv("postgres.database", "DB_NAME")
	viper.BindEnv("postgres.sslmode", "DB_SSLMODE")
	viper.BindEnv("postgres.automigrate", "POSTGRES_AUTOMIGRATE")
	viper.BindEnv("postgres.max_open_connections", "POSTGRES_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("postgres.max_idle_connections", "POSTGRES_MAX_IDLE_CONNECTIONS")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	viper.BindEnv("environment", "ENVIRONMENT")
}
