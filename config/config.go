package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DatabaseDSN   string
	BaseURL       string
	AccessSecret  string
	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	cfg := Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		BaseURL:       os.Getenv("BASE_URL"),
		AccessSecret:  os.Getenv("ACCESS_SECRET"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":3000"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "*"
	}

	return cfg
}
