package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ProductsFile string
	UsersFile    string
	LogLevel     string
}

const (
	envProductsFile = "PRODUCTS_FILE"
	envUsersFile    = "USERS_FILE"
)

func NewConfig() (*Config, error) {
	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	viper.SetDefault("ProductsFile", "Products.txt")
	viper.SetDefault("UsersFile", "users.txt")
	viper.SetDefault("LogLevel", "info")

	err := viper.ReadInConfig()
	if err != nil {
		// the app runs fine on defaults without a config file
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// env overrides for the data file locations
	if os.Getenv(envProductsFile) != "" {
		cfg.ProductsFile = os.Getenv(envProductsFile)
	}
	if os.Getenv(envUsersFile) != "" {
		cfg.UsersFile = os.Getenv(envUsersFile)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	log.Info("config parsed")

	return cfg, nil
}
