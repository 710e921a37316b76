package database

import (
	"errors"

	"github.com/GGmuzem/calculator-api/pkg/models"
)

var (
	// ErrUserExists пользователь с таким логином уже существует
	ErrUserExists = errors.New("пользователь с таким логином уже существует")

	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("пользователь не найден")
)

// Database определяет операции хранилища пользователей и истории вычислений.
// Реализации: SQLiteDB для постоянного хранения и MemoryDB для тестов.
type Database interface {
	// CreateUser создает пользователя и возвращает его ID.
	// Пароль должен быть уже захэширован вызывающей стороной.
	CreateUser(user *models.User) (int, error)

	// GetUserByLogin возвращает пользователя по логину
	GetUserByLogin(login string) (*models.User, error)

	// GetUserByID возвращает пользователя по ID
	GetUserByID(id int) (*models.User, error)

	// SaveCalculation сохраняет запись истории и возвращает её ID
	SaveCalculation(calc *models.Calculation) (int64, error)

	// ListCalculations возвращает последние вычисления пользователя,
	// от новых к старым, не более limit штук
	ListCalculations(userID, limit int) ([]models.Calculation, error)

	// MigrateDB создает схему хранилища
	MigrateDB() error

	// Close закрывает хранилище
	Close() error
}
