package handlers

import (
	"errors"
	"net/http"

	"github.com/GGmuzem/calculator-api/internal/auth"
	"github.com/GGmuzem/calculator-api/internal/database"
	"github.com/GGmuzem/calculator-api/pkg/models"
)

// Register обрабатывает POST /api/v1/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	// Хэшируем пароль
	hashedPassword, err := h.auth.HashPassword(req.Password)
	if err != nil {
		h.log.Errorf("ошибка при хэшировании пароля: %v", err)
		writeError(w, http.StatusInternalServerError, "Ошибка при регистрации")
		return
	}

	user := &models.User{
		Login:    req.Login,
		Password: hashedPassword,
	}

	userID, err := h.db.CreateUser(user)
	if err != nil {
		if errors.Is(err, database.ErrUserExists) {
			writeError(w, http.StatusConflict, "Пользователь с таким логином уже существует")
			return
		}
		h.log.Errorf("ошибка при сохранении пользователя: %v", err)
		writeError(w, http.StatusInternalServerError, "Ошибка при регистрации")
		return
	}

	h.log.Infof("пользователь %s зарегистрирован с ID %d", req.Login, userID)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Пользователь успешно зарегистрирован"})
}

// Login обрабатывает POST /api/v1/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.db.GetUserByLogin(req.Login)
	if err != nil {
		// Не раскрываем, существует ли логин
		writeError(w, http.StatusUnauthorized, "Неверное имя пользователя или пароль")
		return
	}

	if err := h.auth.CheckPassword(user.Password, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "Неверное имя пользователя или пароль")
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		h.log.Errorf("ошибка при создании JWT токена: %v", err)
		writeError(w, http.StatusInternalServerError, "Ошибка авторизации")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
}

// History обрабатывает GET /api/v1/history. Требует авторизации:
// пользователь берется из контекста, установленного middleware.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Требуется авторизация")
		return
	}

	calculations, err := h.db.ListCalculations(user.ID, historyLimit)
	if err != nil {
		h.log.Errorf("ошибка при получении истории: %v", err)
		writeError(w, http.StatusInternalServerError, "Не удалось получить историю")
		return
	}

	writeJSON(w, http.StatusOK, models.HistoryResponse{Calculations: calculations})
}
