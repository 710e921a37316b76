package models

// CalculationRequest входные данные арифметической операции.
// Операнды объявлены указателями, чтобы при валидации отличать
// отсутствующее поле от явного нуля.
type CalculationRequest struct {
	A *float64 `json:"a" validate:"required"`
	B *float64 `json:"b" validate:"required"`
}

// CalculationResponse ответ на успешное вычисление
type CalculationResponse struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    float64 `json:"result"`
}

// ErrorResponse единый формат ошибки для всех 4xx ответов
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse ответ проверки работоспособности
type HealthResponse struct {
	Status string `json:"status"`
}

// Calculation сохраненная запись истории вычислений
type Calculation struct {
	ID        int64   `json:"id"`
	UserID    int     `json:"user_id,omitempty"`
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    float64 `json:"result"`
	CreatedAt int64   `json:"created_at,omitempty"`
}

// HistoryResponse список вычислений пользователя
type HistoryResponse struct {
	Calculations []Calculation `json:"calculations"`
}

// User представляет пользователя системы
type User struct {
	ID       int    `json:"id"`
	Login    string `json:"login"`
	Password string `json:"-"` // Не сериализуем хэш пароля в JSON
}

// RegisterRequest используется для регистрации
type RegisterRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest используется для запроса на вход
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Token string `json:"token"`
}
