package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Grading  Grading
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Grading struct {
	GeminiApiKey   string
	GeminiModel    string
	Timeout        time.Duration
	PassingDefault float64
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GRADING_TIMEOUT_SECONDS", 30)
	viper.SetDefault("GRADING_PASSING_DEFAULT", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Grading.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.Grading.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.Grading.Timeout = time.Duration(viper.GetInt("GRADING_TIMEOUT_SECONDS")) * time.Second
	config.Grading.PassingDefault = viper.GetFloat64("GRADING_PASSING_DEFAULT")

	log.Info().Str("port", config.Server.Port).Str("model", config.Grading.GeminiModel).Msg("Config loaded")
	return &config, nil
}
