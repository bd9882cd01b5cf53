// Package cli реализует команду starfield.
//
// # Обзор
//
// starfield читает карту космоса из файла, расширяет пустые строки и
// столбцы и считает сумму манхэттенских расстояний между всеми парами
// галактик.
//
//	starfield space.txt
//
// # Ключевые компоненты
//
// ## Output
//
// Текстовый отчёт в stdout: исходная сетка, сетка после расширения,
// расстояния по парам и итоговая сумма. Если файл не удалось разобрать,
// в stdout ничего не пишется.
//
// ## Runner
//
// Выполняет конвейер engine (parse → expand → measure), ведёт
// domain.Analysis и после отчёта передаёт его в Sinks.
//
// ## Sinks
//
// Необязательные получатели сводки анализа, включаются переменными
// окружения (см. Config):
//   - METRICS_TEXTFILE — метрики Prometheus в textfile
//   - DB_URL           — запись в таблицу analyses (PostgreSQL)
//   - RABBITMQ_URL     — событие analysis.completed
//
// Ошибки sinks пишутся в лог с уровнем WARN и не меняют код выхода.
package cli
