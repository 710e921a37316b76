package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GGmuzem/calculator-api/internal/auth"
	"github.com/GGmuzem/calculator-api/internal/database"
	"github.com/GGmuzem/calculator-api/pkg/models"
)

// newTestHandler собирает обработчики поверх in-memory БД
func newTestHandler() (*Handler, *auth.Auth, database.Database) {
	db := database.NewMemoryDB()
	a := auth.New("test-secret", time.Hour, db)
	return New(db, a), a, db
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCalcHandlerAdd(t *testing.T) {
	h, _, _ := newTestHandler()

	rr := postJSON(t, h.Calc("add"), "/calc/add", `{"a": 2, "b": 3}`)

	if status := rr.Code; status != http.StatusOK {
		t.Fatalf("Expected status %v, got %v: %s", http.StatusOK, status, rr.Body.String())
	}

	var resp models.CalculationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Operation != "add" {
		t.Errorf("Expected operation 'add', got %q", resp.Operation)
	}
	if resp.Result != 5 {
		t.Errorf("Expected result 5, got %v", resp.Result)
	}
}

func TestCalcHandlerOperations(t *testing.T) {
	h, _, _ := newTestHandler()

	tests := []struct {
		operation string
		body      string
		expected  float64
	}{
		{"add", `{"a": 1, "b": 4}`, 5},
		{"subtract", `{"a": 10, "b": 4}`, 6},
		{"subtract", `{"a": 1, "b": 4}`, -3},
		{"multiply", `{"a": 2.5, "b": 4}`, 10},
		{"divide", `{"a": 9, "b": 3}`, 3},
		{"divide", `{"a": 1, "b": 4}`, 0.25},
	}

	for _, test := range tests {
		rr := postJSON(t, h.Calc(test.operation), "/calc/"+test.operation, test.body)

		if rr.Code != http.StatusOK {
			t.Errorf("%s %s: expected status 200, got %d: %s", test.operation, test.body, rr.Code, rr.Body.String())
			continue
		}

		var resp models.CalculationResponse
		json.Unmarshal(rr.Body.Bytes(), &resp)
		if resp.Result != test.expected {
			t.Errorf("%s %s: expected result %v, got %v", test.operation, test.body, test.expected, resp.Result)
		}
	}
}

func TestCalcHandlerEchoesOperands(t *testing.T) {
	h, _, _ := newTestHandler()

	rr := postJSON(t, h.Calc("multiply"), "/calc/multiply", `{"a": -2.75, "b": 0.5}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp models.CalculationResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)

	// Операнды возвращаются без изменений
	if resp.A != -2.75 || resp.B != 0.5 {
		t.Errorf("Expected echoed operands -2.75 and 0.5, got %v and %v", resp.A, resp.B)
	}
}

func TestCalcHandlerDivideByZero(t *testing.T) {
	h, _, _ := newTestHandler()

	rr := postJSON(t, h.Calc("divide"), "/calc/divide", `{"a": 2, "b": 0}`)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Fatalf("Expected status %v, got %v", http.StatusBadRequest, status)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if resp.Detail != "Cannot divide by zero" {
		t.Errorf("Expected detail 'Cannot divide by zero', got %q", resp.Detail)
	}
}

func TestCalcHandlerZeroOperandIsValid(t *testing.T) {
	h, _, _ := newTestHandler()

	// Явный ноль в операнде не должен считаться отсутствующим полем
	rr := postJSON(t, h.Calc("add"), "/calc/add", `{"a": 0, "b": 0}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for explicit zeros, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp models.CalculationResponse
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.Result != 0 {
		t.Errorf("Expected result 0, got %v", resp.Result)
	}
}

func TestCalcHandlerValidation(t *testing.T) {
	h, _, _ := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{"MissingB", `{"a": 2}`},
		{"MissingBoth", `{}`},
		{"NonNumericA", `{"a": "abc", "b": 3}`},
		{"MalformedJSON", `{"a": 2,`},
		{"EmptyBody", ``},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rr := postJSON(t, h.Calc("add"), "/calc/add", test.body)

			if rr.Code != http.StatusUnprocessableEntity {
				t.Fatalf("Expected status 422, got %d: %s", rr.Code, rr.Body.String())
			}

			var resp models.ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Detail == "" {
				t.Error("Expected non-empty detail in validation error")
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	h, _, _ := newTestHandler()

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.Health).ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Fatalf("Expected status %v, got %v", http.StatusOK, status)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Expected status 'ok', got %q", resp.Status)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	h, _, _ := newTestHandler()

	// Регистрация
	rr := postJSON(t, h.Register, "/api/v1/register", `{"login": "testuser", "password": "password123"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	// Повторная регистрация с тем же логином
	rr = postJSON(t, h.Register, "/api/v1/register", `{"login": "testuser", "password": "password123"}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("Expected status 409 for duplicate login, got %d", rr.Code)
	}

	// Вход
	rr = postJSON(t, h.Login, "/api/v1/login", `{"login": "testuser", "password": "password123"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for login, got %d: %s", rr.Code, rr.Body.String())
	}

	var loginResp models.LoginResponse
	json.Unmarshal(rr.Body.Bytes(), &loginResp)
	if loginResp.Token == "" {
		t.Fatal("Expected non-empty token")
	}

	// Вход с неверным паролем
	rr = postJSON(t, h.Login, "/api/v1/login", `{"login": "testuser", "password": "wrong"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401 for wrong password, got %d", rr.Code)
	}

	// Регистрация без пароля — ошибка валидации
	rr = postJSON(t, h.Register, "/api/v1/register", `{"login": "another"}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected status 422 for missing password, got %d", rr.Code)
	}
}

func TestCalcHandlerRecordsHistoryForAuthorizedUser(t *testing.T) {
	h, a, db := newTestHandler()

	// Создаем пользователя напрямую в БД
	hash, err := a.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	userID, err := db.CreateUser(&models.User{Login: "historyuser", Password: hash})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	token, err := a.GenerateToken(&models.User{ID: userID, Login: "historyuser"})
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	// Авторизованное вычисление
	req, _ := http.NewRequest("POST", "/calc/add", bytes.NewBufferString(`{"a": 2, "b": 3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.Calc("add").ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	calculations, err := db.ListCalculations(userID, 10)
	if err != nil {
		t.Fatalf("Failed to list calculations: %v", err)
	}
	if len(calculations) != 1 {
		t.Fatalf("Expected 1 calculation in history, got %d", len(calculations))
	}
	if calculations[0].Operation != "add" || calculations[0].Result != 5 {
		t.Errorf("Unexpected history record: %+v", calculations[0])
	}

	// Анонимное вычисление историю не пополняет
	rr = postJSON(t, h.Calc("add"), "/calc/add", `{"a": 1, "b": 1}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	calculations, _ = db.ListCalculations(userID, 10)
	if len(calculations) != 1 {
		t.Errorf("Anonymous calculation must not be recorded, history has %d records", len(calculations))
	}
}

func TestHistoryHandlerRequiresUser(t *testing.T) {
	h, _, _ := newTestHandler()

	// Без контекста пользователя — 401
	req, _ := http.NewRequest("GET", "/api/v1/history", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.History).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", rr.Code)
	}
}
