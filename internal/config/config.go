package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	AppEnv          string `mapstructure:"APP_ENV"`
	ServerPort      string `mapstructure:"SERVER_PORT"`
	DBDriver        string `mapstructure:"DB_DRIVER"`
	DBDSN           string `mapstructure:"DB_DSN"`
	ResetDB         bool   `mapstructure:"RESET_DB"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisDB         int    `mapstructure:"REDIS_DB"`
	RedisPass       string `mapstructure:"REDIS_PASSWORD"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	CORSOrigin      string `mapstructure:"CORS_ORIGIN"`
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	AMQPURL         string `mapstructure:"AMQP_URL"`
	AMQPExchange    string `mapstructure:"AMQP_EXCHANGE"`
}

var defaults = map[string]interface{}{
	"APP_ENV":           "production",
	"SERVER_PORT":       "8080",
	"DB_DRIVER":         "mysql",
	"DB_DSN":            "user:password@tcp(localhost:3306)/gallery?charset=utf8mb4&parseTime=True&loc=UTC",
	"RESET_DB":          false,
	"REDIS_ADDR":        "localhost:6379",
	"REDIS_DB":          0,
	"REDIS_PASSWORD":    "",
	"JWT_SECRET":        "change-me",
	"CORS_ORIGIN":       "http://localhost:3000",
	"STRIPE_SECRET_KEY": "",
	"AMQP_URL":          "",
	"AMQP_EXCHANGE":     "gallery.events",
}

// Load reads an optional .env file and then the environment, with sensible defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(viper.New())
}

// FromViper builds Config from v, binding every key to the environment.
func FromViper(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)
	return &cfg, nil
}

// IsDevelopment reports whether the service runs locally.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
