package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds every deployment setting for the backend and the terminal
// chat client. Values come from a .env file, environment variables, or the
// defaults below, in that order of precedence.
type Config struct {
	AppPort     int    `mapstructure:"APP_PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"` // comma-separated allowlist

	// Provider settings. The model, temperature and token limit are fixed
	// per deployment and never client-controlled.
	DeepSeekAPIKey      string  `mapstructure:"DEEPSEEK_API_KEY"`
	DeepSeekAPIURL      string  `mapstructure:"DEEPSEEK_API_URL"`
	DeepSeekModel       string  `mapstructure:"DEEPSEEK_MODEL"`
	DeepSeekTemperature float64 `mapstructure:"DEEPSEEK_TEMPERATURE"`
	DeepSeekMaxTokens   int     `mapstructure:"DEEPSEEK_MAX_TOKENS"`

	// Excursion-request mailer. When SMTP_USER or SMTP_PASSWORD is empty
	// the mailer is disabled and requests succeed without sending.
	SMTPHost       string `mapstructure:"SMTP_HOST"`
	SMTPPort       int    `mapstructure:"SMTP_PORT"`
	SMTPUser       string `mapstructure:"SMTP_USER"`
	SMTPPassword   string `mapstructure:"SMTP_PASSWORD"`
	RecipientEmail string `mapstructure:"RECIPIENT_EMAIL"`

	// Terminal chat client.
	ChatServerURL   string `mapstructure:"CHAT_SERVER_URL"`
	ChatStore       string `mapstructure:"CHAT_STORE"` // file | memory | sqlite | redis
	ChatLocale      string `mapstructure:"CHAT_LOCALE"`
	ChatHistoryPath string `mapstructure:"CHAT_HISTORY_PATH"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	DatabasePath    string `mapstructure:"DATABASE_PATH"`
}

// Origins returns the CORS allowlist as a slice.
func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// MailConfigured reports whether SMTP credentials are present.
func (c *Config) MailConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPassword != ""
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 3001)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("CORS_ORIGINS", "https://streets.novapbs.ru,https://novapbs.ru")

	viper.SetDefault("DEEPSEEK_API_KEY", "")
	viper.SetDefault("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions")
	viper.SetDefault("DEEPSEEK_MODEL", "deepseek-chat")
	viper.SetDefault("DEEPSEEK_TEMPERATURE", 0.6)
	viper.SetDefault("DEEPSEEK_MAX_TOKENS", 2048)

	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("RECIPIENT_EMAIL", "contact@novapbs.ru")

	viper.SetDefault("CHAT_SERVER_URL", "http://localhost:3001")
	viper.SetDefault("CHAT_STORE", "file")
	viper.SetDefault("CHAT_LOCALE", "ru")
	viper.SetDefault("CHAT_HISTORY_PATH", "./data/chat-history.json")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("DATABASE_PATH", "./data/streets.db")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
