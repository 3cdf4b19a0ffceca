package constants

const (
	// ConfigName and ConfigFormat describe the config file viper looks for.
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. BYTSMARTZ_EMAIL_SMTP_HOST overrides email.smtp.host.
	EnvPrefix = "BYTSMARTZ"

	ServiceName = "leads_backend"
)
