package common

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

const defaultCorsOrigins = "http://localhost:3000,https://restaurant-mqgq.vercel.app"

type Config struct {
	Viper *viper.Viper
}

// NewViper reads .env when it exists. Process environment always wins.
func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.SetConfigType("env")
	config.AutomaticEnv()
	setDefaults(config)

	log.Trace("Checking file .env ....")
	if _, err := os.Stat(".env"); err == nil {
		if err := config.ReadInConfig(); err != nil {
			panic("failed read config")
		}
	}
	return &Config{Viper: config}
}

// NewConfig wraps an existing viper instance, filling in defaults.
func NewConfig(v *viper.Viper) *Config {
	setDefaults(v)
	return &Config{Viper: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "tour-booking-api")
	v.SetDefault("APP_PORT", "7720")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("CORS_ORIGINS", defaultCorsOrigins)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_DB", 0)
}

func (c *Config) GetAppConfig() (appName, port string) {
	return c.Viper.GetString("APP_NAME"), c.Viper.GetString("APP_PORT")
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetSupabaseConfig() (url, anonKey, serviceRoleKey string) {
	return c.Viper.GetString("SUPABASE_URL"),
		c.Viper.GetString("SUPABASE_ANON_KEY"),
		c.Viper.GetString("SUPABASE_SERVICE_ROLE_KEY")
}

// GetJwtConfig returns the secret the identity provider signs access tokens with.
func (c *Config) GetJwtConfig() []byte {
	return []byte(c.Viper.GetString("SUPABASE_JWT_SECRET"))
}

func (c *Config) GetRedisConfig() (addr, password string, db int) {
	return c.Viper.GetString("REDIS_ADDR"),
		c.Viper.GetString("REDIS_PASSWORD"),
		c.Viper.GetInt("REDIS_DB")
}

// GetCorsOrigins returns the allowed origins as a comma list. Credentials are
// allowed, so the "*" wildcard is dropped; an empty result falls back to the defaults.
func (c *Config) GetCorsOrigins() string {
	if origins := cleanOrigins(c.Viper.GetString("CORS_ORIGINS")); origins != "" {
		return origins
	}
	return defaultCorsOrigins
}

func cleanOrigins(raw string) string {
	origins := strings.Split(raw, ",")
	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			log.Warn("CORS_ORIGINS: wildcard origin is not allowed with credentials, ignoring it")
			continue
		}
		if origin != "" {
			cleaned = append(cleaned, origin)
		}
	}
	return strings.Join(cleaned, ",")
}

func (c *Config) GetLogLevel() string {
	return c.Viper.GetString("LOG_LEVEL")
}
