// Package handlers содержит HTTP-обработчики сервиса: арифметические
// операции, проверку работоспособности, регистрацию, вход и историю
// вычислений.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/GGmuzem/calculator-api/internal/auth"
	"github.com/GGmuzem/calculator-api/internal/database"
	"github.com/GGmuzem/calculator-api/pkg/models"
)

// historyLimit сколько записей истории отдаем за один запрос
const historyLimit = 50

// Handler связывает обработчики с хранилищем и сервисом аутентификации
type Handler struct {
	db       database.Database
	auth     *auth.Auth
	validate *validator.Validate
	log      *zap.SugaredLogger
}

// New создает набор обработчиков
func New(db database.Database, a *auth.Auth) *Handler {
	return &Handler{
		db:       db,
		auth:     a,
		validate: validator.New(),
		log:      zap.S().With("module", "handlers"),
	}
}

// writeJSON сериализует ответ с указанным статусом
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError отправляет ошибку в едином формате {"detail": ...}
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

// decodeAndValidate разбирает тело запроса и прогоняет его через
// валидатор. Ошибки формата и ошибки схемы одинаково считаются
// ошибками клиента (422).
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body: "+err.Error())
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}

	return true
}
