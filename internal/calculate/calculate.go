package calculate

// Поддерживаемые операции
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

// Operations список всех поддерживаемых операций в порядке регистрации маршрутов
var Operations = []string{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Add возвращает сумму двух чисел
func Add(a, b float64) float64 {
	return a + b
}

// Subtract возвращает разность двух чисел
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply возвращает произведение двух чисел
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide возвращает частное двух чисел. Деление на ноль — доменная
// ошибка; близкие к нулю, но ненулевые делители дают обычное
// частное с плавающей точкой.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, DivisionByZeroError()
	}
	return a / b, nil
}

// Compute выполняет операцию по её имени и возвращает результат
func Compute(operation string, a, b float64) (float64, error) {
	switch operation {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	}
	return 0, UnknownOperationError(operation)
}
