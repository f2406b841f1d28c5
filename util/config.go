package util

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds the minimark binary settings, read from an app.env file or
// the process environment.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	BoldTag     string `mapstructure:"BOLD_TAG"`
	ItalicTag   string `mapstructure:"ITALIC_TAG"`
	HeaderTag   string `mapstructure:"HEADER_TAG"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("BOLD_TAG", "strong")
	viper.SetDefault("ITALIC_TAG", "em")
	viper.SetDefault("HEADER_TAG", "h1")

	err = viper.ReadInConfig()
	if err != nil {
		// the defaults and the process environment are enough when no
		// config file is present
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
