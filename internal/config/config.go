package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rewear/exchange/internal/cache"
	"github.com/rewear/exchange/internal/notify"
	"github.com/rewear/exchange/internal/service"
	"github.com/rewear/exchange/pkg/mysql"
)

type Config struct {
	API      API                `mapstructure:"api"`
	Database mysql.Config       `mapstructure:"database"`
	Redis    cache.Config       `mapstructure:"redis"`
	Auth     service.AuthConfig `mapstructure:"auth"`
	Mailgun  notify.Config      `mapstructure:"mailgun"`
}

type API struct {
	Port string `mapstructure:"port"`
}

func Load() (cfg *Config, err error) {
	// Secrets come from the environment; .env is a local convenience.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
