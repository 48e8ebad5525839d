package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`
	TrustedProxies    string `mapstructure:"TRUSTED_PROXIES"`

	// Remote booking API.
	UpstreamBaseURL        string `mapstructure:"UPSTREAM_BASE_URL"`
	UpstreamTimeoutSeconds int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB  int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCheckoutDB int    `mapstructure:"REDIS_CHECKOUT_DB"`
	RedisQueueDB    int    `mapstructure:"REDIS_QUEUE_DB"`

	// Sessions.
	SessionTTLHours    int    `mapstructure:"SESSION_TTL_HOURS"`
	CheckoutTTLMinutes int    `mapstructure:"CHECKOUT_TTL_MINUTES"`
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	SessionSealKey     string `mapstructure:"SESSION_SEAL_KEY"`

	// Upstream call audit log.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	AuditEnabled bool   `mapstructure:"AUDIT_ENABLED"`
	AuditDBName  string `mapstructure:"AUDIT_DB_NAME"`

	StripeKey       string `mapstructure:"STRIPE_KEY"`
	Timezone        string `mapstructure:"TIMEZONE"`
	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("TRUSTED_PROXIES", "")
	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:8081")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 15)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CHECKOUT_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("SESSION_TTL_HOURS", 720)
	viper.SetDefault("CHECKOUT_TTL_MINUTES", 30)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("SESSION_SEAL_KEY", "")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("AUDIT_ENABLED", false)
	viper.SetDefault("AUDIT_DB_NAME", "aspcare")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("DEFAULT_CURRENCY", "INR")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UpstreamTimeout is the per-request budget for calls to the booking API.
func UpstreamTimeout() time.Duration {
	if AppConfig.UpstreamTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(AppConfig.UpstreamTimeoutSeconds) * time.Second
}

func SessionTTL() time.Duration {
	if AppConfig.SessionTTLHours <= 0 {
		return 720 * time.Hour
	}
	return time.Duration(AppConfig.SessionTTLHours) * time.Hour
}

func CheckoutTTL() time.Duration {
	if AppConfig.CheckoutTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(AppConfig.CheckoutTTLMinutes) * time.Minute
}

// Location resolves TIMEZONE, falling back to UTC when the zone database lacks it.
func Location() *time.Location {
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		log.Printf("Unknown timezone %q, using UTC", AppConfig.Timezone)
		return time.UTC
	}
	return loc
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(AppConfig.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// TrustedProxies splits TRUSTED_PROXIES on commas. Empty means forwarding headers are ignored.
func TrustedProxies() []string {
	var proxies []string
	for _, p := range strings.Split(AppConfig.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}
