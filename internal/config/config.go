package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	HTTPPort       string
	KafkaBrokers   []string
	UseKafka       bool
	CurrencyLocale string
	CurrencyCode   string
}

func LoadConfig() *Config {
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")

	return &Config{
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "wishlab"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		KafkaBrokers:   kafkaBrokers,
		UseKafka:       getEnv("USE_KAFKA", "false") == "true",
		CurrencyLocale: getEnv("CURRENCY_LOCALE", "pt-BR"),
		CurrencyCode:   getEnv("CURRENCY_CODE", "BRL"),
	}
}
