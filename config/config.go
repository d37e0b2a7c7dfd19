package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration.
	DatabaseURL string        `mapstructure:"DATABASE_URL"`
	DBUser      string        `mapstructure:"DB_USER"`
	DBPass      string        `mapstructure:"DB_PASS"`
	DBName      string        `mapstructure:"DB_NAME"`
	DBTimeout   time.Duration `mapstructure:"DB_TIMEOUT"`

	// Session tokens.
	JWTSecret  string        `mapstructure:"JWT_SECRET"`
	SessionTTL time.Duration `mapstructure:"SESSION_TTL"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
	// Proxies whose X-Forwarded-For is believed. Empty trusts none.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Redis configuration. An empty address disables the services cache.
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int           `mapstructure:"REDIS_CACHE_DB"`
	ServicesCacheTTL time.Duration `mapstructure:"SERVICES_CACHE_TTL"`

	// Cloudinary credentials for service images.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
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

	// Set default values.
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DB_USER", "")
	viper.SetDefault("DB_PASS", "")
	viper.SetDefault("DB_NAME", "car-doctor")
	viper.SetDefault("DB_TIMEOUT", "5s")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("SESSION_TTL", "1h")
	viper.SetDefault("CORS_ORIGINS", "https://car-doctor-472da.web.app,http://localhost:5173")
	viper.SetDefault("TRUSTED_PROXIES", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("SERVICES_CACHE_TTL", "10m")
	viper.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Older deployments name the signing secret ACCESS_TOKEN_SECRET.
	if AppConfig.JWTSecret == "" {
		AppConfig.JWTSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	}
	if AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET (or ACCESS_TOKEN_SECRET) must be set")
	}
}

// MongoURI returns DATABASE_URL with the <user> and <pass> placeholders
// replaced by DB_USER and DB_PASS.
func (c Config) MongoURI() string {
	return strings.NewReplacer("<user>", c.DBUser, "<pass>", c.DBPass).Replace(c.DatabaseURL)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
