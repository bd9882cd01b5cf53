// Starfield — считает сумму расстояний между галактиками
// в расширяющемся космосе.
//
// Использование:
//
//	starfield PATH
//
// PATH — текстовый файл: строки из '#' (галактика) и '.' (пусто).
// Отчёт печатается в stdout, логи — в stderr.
//
// Переменные окружения:
//
//	LOG_LEVEL         DEBUG, INFO, WARN, ERROR (по умолчанию INFO)
//	LOG_FORMAT        json (по умолчанию) или text
//	METRICS_TEXTFILE  путь для метрик Prometheus
//	DB_URL            PostgreSQL DSN для сохранения анализа
//	RABBITMQ_URL      адрес RabbitMQ для события analysis.completed
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaiso/Starfield/internal/cli"
	"github.com/shaiso/Starfield/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger(os.Stderr)

	// Отмена по сигналу прерывает только sinks: конвейер синхронный
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := cli.NewRootCmd(version, logger, cli.ConfigFromEnv(), nil)

	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
