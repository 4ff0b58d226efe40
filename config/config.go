package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Services ServicesConfig
	Mail     MailConfig
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
	// QueryTimeout bounds every store access so a slow database surfaces
	// as an error instead of hanging the request.
	QueryTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type ServicesConfig struct {
	CardiovascularURL string
	DiabeticURL       string
	Timeout           time.Duration
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// A missing .env is fine, configuration then comes from the environment.
	_ = viper.ReadInConfig()

	secret := viper.GetString("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	expiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		expiry = 24 * time.Hour
	}

	queryTimeout, err := time.ParseDuration(viper.GetString("DB_QUERY_TIMEOUT"))
	if err != nil {
		queryTimeout = 5 * time.Second
	}

	serviceTimeout, err := time.ParseDuration(viper.GetString("PREDICTION_TIMEOUT"))
	if err != nil {
		serviceTimeout = 30 * time.Second
	}

	viper.SetDefault("APP_PORT", "5003")
	viper.SetDefault("MAIL_PORT", 587)
	viper.SetDefault("MAIL_FROM", "Health Prediction System <noreply@healthprediction.com>")

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:         viper.GetString("DB_HOST"),
			Port:         viper.GetString("DB_PORT"),
			User:         viper.GetString("DB_USER"),
			Password:     viper.GetString("DB_PASSWORD"),
			Name:         viper.GetString("DB_NAME"),
			QueryTimeout: queryTimeout,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: secret,
			Expiry: expiry,
		},
		Services: ServicesConfig{
			CardiovascularURL: viper.GetString("CARDIOVASCULAR_SERVICE_URL"),
			DiabeticURL:       viper.GetString("DIABETIC_SERVICE_URL"),
			Timeout:           serviceTimeout,
		},
		Mail: MailConfig{
			Host:     viper.GetString("MAIL_HOST"),
			Port:     viper.GetInt("MAIL_PORT"),
			Username: viper.GetString("MAIL_USER"),
			Password: viper.GetString("MAIL_PASSWORD"),
			From:     viper.GetString("MAIL_FROM"),
		},
	}

	return config, nil
}
