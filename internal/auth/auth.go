package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/GGmuzem/calculator-api/internal/database"
	"github.com/GGmuzem/calculator-api/pkg/models"
)

var (
	// ErrInvalidCredentials неверный логин или пароль
	ErrInvalidCredentials = errors.New("неверный логин или пароль")

	// ErrInvalidToken неверный или истекший токен
	ErrInvalidToken = errors.New("неверный или истекший токен")
)

// Claims структура для JWT-токена
type Claims struct {
	UserID int    `json:"user_id"`
	Login  string `json:"login"`
	jwt.RegisteredClaims
}

// Auth выпускает и проверяет JWT токены, хэширует пароли
type Auth struct {
	secret []byte
	ttl    time.Duration
	db     database.Database
	log    *zap.SugaredLogger
}

// New создает сервис аутентификации
func New(secret string, ttl time.Duration, db database.Database) *Auth {
	return &Auth{
		secret: []byte(secret),
		ttl:    ttl,
		db:     db,
		log:    zap.S().With("module", "auth"),
	}
}

// GenerateToken создает JWT токен для пользователя
func (a *Auth) GenerateToken(user *models.User) (string, error) {
	// Устанавливаем срок действия токена
	expirationTime := time.Now().Add(a.ttl)

	claims := &Claims{
		UserID: user.ID,
		Login:  user.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Подписываем токен секретным ключом
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken проверяет и валидирует JWT токен
func (a *Auth) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем метод подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// HashPassword хэширует пароль через bcrypt
func (a *Auth) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("не удалось захэшировать пароль: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword сравнивает пароль с bcrypt-хэшем
func (a *Auth) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ExtractTokenFromRequest извлекает токен из HTTP-запроса
func ExtractTokenFromRequest(r *http.Request) string {
	// Получаем токен из заголовка Authorization
	bearerToken := r.Header.Get("Authorization")

	// Проверяем формат Bearer token
	if len(bearerToken) > 7 && strings.ToUpper(bearerToken[0:7]) == "BEARER " {
		return bearerToken[7:]
	}

	return ""
}

// UserFromRequest пытается определить пользователя по токену запроса.
// Отсутствие или невалидность токена не является ошибкой: запрос
// просто считается анонимным.
func (a *Auth) UserFromRequest(r *http.Request) (*models.User, bool) {
	tokenString := ExtractTokenFromRequest(r)
	if tokenString == "" {
		return nil, false
	}

	claims, err := a.ValidateToken(tokenString)
	if err != nil {
		return nil, false
	}

	user, err := a.db.GetUserByID(claims.UserID)
	if err != nil {
		return nil, false
	}

	return user, true
}

// Middleware проверяет авторизацию перед вызовом обработчика
func (a *Auth) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Извлекаем токен из запроса
		tokenString := ExtractTokenFromRequest(r)
		if tokenString == "" {
			writeUnauthorized(w, "Требуется авторизация")
			return
		}

		// Валидируем токен
		claims, err := a.ValidateToken(tokenString)
		if err != nil {
			a.log.Debugf("невалидный токен: %v", err)
			writeUnauthorized(w, "Неверный токен")
			return
		}

		// Проверяем существование пользователя
		user, err := a.db.GetUserByID(claims.UserID)
		if err != nil {
			writeUnauthorized(w, "Пользователь не найден")
			return
		}

		// Устанавливаем контекст пользователя
		r = r.WithContext(SetUserContext(r.Context(), user))

		next(w, r)
	}
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"detail": %q}`, detail)
}

// Пользователь передается обработчикам через контекст запроса под
// неэкспортируемым ключом, чтобы никто снаружи пакета не мог его
// подменить.

type contextKey string

const userContextKey contextKey = "user"

// SetUserContext сохраняет пользователя в контексте
func SetUserContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext извлекает пользователя, положенного в контекст
// middleware'ом
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
