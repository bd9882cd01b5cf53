package cli

import "os"

// Config — настройки из переменных окружения.
// Пустое значение выключает соответствующий sink.
type Config struct {
	// MetricsTextfile — путь для выгрузки метрик (METRICS_TEXTFILE).
	MetricsTextfile string

	// DatabaseURL — DSN PostgreSQL (DB_URL).
	DatabaseURL string

	// RabbitMQURL — адрес брокера (RABBITMQ_URL).
	RabbitMQURL string
}

// ConfigFromEnv читает Config из окружения процесса.
func ConfigFromEnv() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	return Config{
		MetricsTextfile: getenv("METRICS_TEXTFILE"),
		DatabaseURL:     getenv("DB_URL"),
		RabbitMQURL:     getenv("RABBITMQ_URL"),
	}
}
