// Package mq публикует события анализа в RabbitMQ.
//
// Структура:
//   - connection.go — соединение и канал в confirm-режиме
//   - topology.go   — объявление exchange, queue, binding
//   - publisher.go  — публикация сообщений
//
// Типы сообщений:
//   - analysis.completed — анализ завершён (успешно или с ошибкой)
//
// Exchanges:
//   - starfield.analyses — события анализов
package mq
