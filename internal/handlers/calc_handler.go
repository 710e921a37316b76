package handlers

import (
	"errors"
	"net/http"

	"github.com/GGmuzem/calculator-api/internal/calculate"
	"github.com/GGmuzem/calculator-api/pkg/models"
)

// Health обрабатывает GET /health. Не зависит ни от БД, ни от
// авторизации: отвечает всегда.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

// Calc возвращает обработчик POST /calc/<operation> для одной из
// четырех операций. Операнды из тела запроса эхом возвращаются в ответе.
func (h *Handler) Calc(operation string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CalculationRequest
		if !h.decodeAndValidate(w, r, &req) {
			return
		}

		a, b := *req.A, *req.B

		result, err := calculate.Compute(operation, a, b)
		if err != nil {
			h.handleCalcError(w, err)
			return
		}

		// Для авторизованных пользователей сохраняем вычисление в историю
		if user, ok := h.auth.UserFromRequest(r); ok {
			calc := &models.Calculation{
				UserID:    user.ID,
				Operation: operation,
				A:         a,
				B:         b,
				Result:    result,
			}
			if _, err := h.db.SaveCalculation(calc); err != nil {
				// Результат уже вычислен, ошибку записи только логируем
				h.log.Warnf("не удалось сохранить вычисление в историю: %v", err)
			}
		}

		writeJSON(w, http.StatusOK, models.CalculationResponse{
			Operation: operation,
			A:         a,
			B:         b,
			Result:    result,
		})
	}
}

// handleCalcError превращает доменную ошибку вычисления в клиентский
// ответ 400, все остальное — во внутреннюю ошибку сервера
func (h *Handler) handleCalcError(w http.ResponseWriter, err error) {
	var calcErr *calculate.CalcError
	if errors.As(err, &calcErr) {
		writeError(w, http.StatusBadRequest, calcErr.Message)
		return
	}

	h.log.Errorf("ошибка вычисления: %v", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
