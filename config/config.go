package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	Token TokenConfig
	CORS  CORSConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type TokenConfig struct {
	Secret string
	Expiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	tokenExpiry, err := time.ParseDuration(viper.GetString("TOKEN_EXPIRY"))
	if err != nil {
		tokenExpiry = 30 * 24 * time.Hour
	}

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		// Expo development origins, matching the mobile client setup.
		origins = "http://localhost:19000,http://localhost:19006"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Token: TokenConfig{
			Secret: viper.GetString("TOKEN_SECRET"),
			Expiry: tokenExpiry,
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(origins, ","),
		},
	}

	return config, nil
}
