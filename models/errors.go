package models

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError восстановимая ошибка входных данных,
// сообщение возвращается пользователю, состояние не изменяется
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// ErrInconsistentState активная запись журнала не найдена или уже закрыта
// параллельным решением. Признак сбоя предыдущего перехода либо гонки,
// требует расследования, а не тихого восстановления.
var ErrInconsistentState = errors.New("заявка находится в несогласованном состоянии")
