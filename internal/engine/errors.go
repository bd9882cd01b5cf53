package engine

import (
	"errors"
	"fmt"
)

// Ошибки разбора входного файла.
var (
	// ErrUnexpectedCell — символ, отличный от '#' и '.'.
	ErrUnexpectedCell = errors.New("unexpected cell")

	// ErrRaggedRow — ширина строки отличается от ширины первой строки.
	ErrRaggedRow = errors.New("row width differs from first row")
)

// ParseError — ошибка разбора с позицией во входном файле.
type ParseError struct {
	Line    int    // номер строки, с 1
	Column  int    // номер символа, с 1 (0 — строка целиком)
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Unwrap возвращает базовую ошибку.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError создаёт новую ошибку разбора.
func NewParseError(line, column int, message string, err error) *ParseError {
	return &ParseError{
		Line:    line,
		Column:  column,
		Message: message,
		Err:     err,
	}
}
