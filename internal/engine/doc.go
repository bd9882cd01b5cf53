// Package engine содержит конвейер обработки карты космоса.
//
// Включает:
//   - parser.go   — чтение сетки, нумерация галактик, план расширения
//   - expander.go — дублирование пустых строк и столбцов
//   - distance.go — манхэттенские расстояния между всеми парами галактик
//   - pipeline.go — связка parse → expand → measure
//
// Все стадии синхронные и не используют общее состояние:
// каждая получает результат предыдущей.
package engine
