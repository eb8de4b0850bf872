package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr        string `mapstructure:"addr"`
		MetricsAddr string `mapstructure:"metrics_addr"`
		Env         string `mapstructure:"env"` // "production" enables Secure cookies
		CORSOrigins string `mapstructure:"cors_origins"`
	} `mapstructure:"server"`
	Data struct {
		Dir string `mapstructure:"dir"` // users.json, logs.json live here
	} `mapstructure:"data"`
	Session struct {
		Secret string `mapstructure:"secret"`
	} `mapstructure:"session"`
	Admin struct {
		Username     string `mapstructure:"username"`
		PasswordHash string `mapstructure:"password_hash"` // base64-wrapped bcrypt
	} `mapstructure:"admin"`
	Anthropic struct {
		APIKey    string        `mapstructure:"api_key"`
		Model     string        `mapstructure:"model"`
		MaxTokens int64         `mapstructure:"max_tokens"`
		Timeout   time.Duration `mapstructure:"timeout"`
	} `mapstructure:"anthropic"`
	Archive struct {
		Provider string `mapstructure:"provider"` // "local" or "s3"
		LocalDir string `mapstructure:"local_dir"`
		KeyID    string `mapstructure:"key_id"`
		AppKey   string `mapstructure:"app_key"`
		Endpoint string `mapstructure:"endpoint"`
		Region   string `mapstructure:"region"`
		Bucket   string `mapstructure:"bucket"`
	} `mapstructure:"archive"`
}

// Load reads config.yaml (optional) and the environment. The authentication
// and API-key variables keep the names the deployment already uses
// (ANTHROPIC_API_KEY, JWT_SECRET, APP_USERNAME, APP_PASSWORD_HASH, APP_ENV).
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("LEXAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Legacy environment names take precedence over the LEXAI_ prefix.
	v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY", "LEXAI_ANTHROPIC_API_KEY")
	v.BindEnv("session.secret", "JWT_SECRET", "LEXAI_SESSION_SECRET")
	v.BindEnv("admin.username", "APP_USERNAME", "LEXAI_ADMIN_USERNAME")
	v.BindEnv("admin.password_hash", "APP_PASSWORD_HASH", "LEXAI_ADMIN_PASSWORD_HASH")
	v.BindEnv("server.env", "APP_ENV", "LEXAI_SERVER_ENV")

	v.BindEnv("server.addr")
	v.BindEnv("server.metrics_addr")
	v.BindEnv("server.cors_origins")
	v.BindEnv("data.dir")
	v.BindEnv("anthropic.model")
	v.BindEnv("anthropic.max_tokens")
	v.BindEnv("anthropic.timeout")
	v.BindEnv("archive.provider")
	v.BindEnv("archive.local_dir")
	v.BindEnv("archive.key_id")
	v.BindEnv("archive.app_key")
	v.BindEnv("archive.endpoint")
	v.BindEnv("archive.region")
	v.BindEnv("archive.bucket")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.metrics_addr", ":9091")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_origins", "http://localhost:3000")
	v.SetDefault("data.dir", "./data")
	v.SetDefault("session.secret", "lexai-default-secret-change-in-production")
	v.SetDefault("anthropic.model", "claude-opus-4-5")
	v.SetDefault("anthropic.max_tokens", 8192)
	v.SetDefault("anthropic.timeout", 2*time.Minute)
	v.SetDefault("archive.provider", "local")
	v.SetDefault("archive.local_dir", "./data/archive")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	if err := v.ReadInConfig(); err == nil {
		log.Printf("Loaded config file: %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to unmarshal config: %v", err)
	}
	return &cfg
}

// IsProduction controls the Secure attribute of the session cookie.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}

// CORSOrigins returns the comma-separated allowed origins as a slice.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.Server.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
