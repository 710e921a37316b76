package calculate

import "fmt"

// CalcError описывает ошибку вычисления, вызванную данными запроса
type CalcError struct {
	Message string
}

func (e *CalcError) Error() string {
	return e.Message
}

// NewCalcError создает новую ошибку CalcError
func NewCalcError(message string) *CalcError {
	return &CalcError{Message: message}
}

// DivisionByZeroError создаёт ошибку деления на ноль
func DivisionByZeroError() *CalcError {
	return NewCalcError("Cannot divide by zero")
}

// UnknownOperationError создаёт ошибку неизвестной операции
func UnknownOperationError(operation string) *CalcError {
	return NewCalcError(fmt.Sprintf("Unknown operation: %s", operation))
}
