// Package telemetry обеспечивает наблюдаемость анализа.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики анализа
//
// Логи пишутся в stderr: stdout занят отчётом. Метрики собираются
// в отдельный registry и выгружаются в textfile (формат
// textfile collector у node_exporter), если задан METRICS_TEXTFILE.
package telemetry
