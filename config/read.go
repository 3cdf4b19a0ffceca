package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/bytsmartz/leads_backend/pkg/constants"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(constants.ConfigName)
	viper.SetConfigType(constants.ConfigFormat)
	viper.AddConfigPath(configPath)

	setDefaults()

	// Allow env vars to override config values.
	// e.g. BYTSMARTZ_EMAIL_SMTP_HOST overrides email.smtp.host
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read the config file (optional in Docker environments)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only fail if it's not a "file not found" error
			if os.Getenv(constants.EnvPrefix+"_EMAIL_SMTP_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.environment", "development")

	// SMTP relay defaults match the site's long-standing Brevo setup.
	viper.SetDefault("email.smtp.host", "smtp-relay.brevo.com")
	viper.SetDefault("email.smtp.port", 587)
	viper.SetDefault("email.smtp.use_tls", false)
	viper.SetDefault("email.smtp.timeout_seconds", 30)

	viper.SetDefault("leads.company_email", "contact@bytsmartz.com")
	viper.SetDefault("leads.company_name", "BytSmartz")
	viper.SetDefault("leads.default_phone_region", "IN")

	viper.SetDefault("cloudinary.timeout_seconds", 30)

	viper.SetDefault("observability.service_name", constants.ServiceName)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.output.stdout", true)
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}
