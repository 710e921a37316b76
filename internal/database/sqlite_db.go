package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/GGmuzem/calculator-api/pkg/models"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDB реализация интерфейса Database для SQLite
type SQLiteDB struct {
	db *sql.DB
}

// New создаёт и инициализирует новый экземпляр SQLite БД
func New(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к базе данных: %w", err)
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось проверить соединение с базой данных: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close закрывает соединение с БД
func (db *SQLiteDB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// MigrateDB выполняет миграцию базы данных
func (db *SQLiteDB) MigrateDB() error {
	// Создаем таблицу пользователей
	_, err := db.db.Exec(`
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		login TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("не удалось создать таблицу users: %w", err)
	}

	// Создаем таблицу истории вычислений
	_, err = db.db.Exec(`
	CREATE TABLE IF NOT EXISTS calculations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		operation TEXT NOT NULL,
		a REAL NOT NULL,
		b REAL NOT NULL,
		result REAL NOT NULL,
		created_at INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`)
	if err != nil {
		return fmt.Errorf("не удалось создать таблицу calculations: %w", err)
	}

	return nil
}

// CreateUser создает нового пользователя и возвращает его ID
func (db *SQLiteDB) CreateUser(user *models.User) (int, error) {
	res, err := db.db.Exec(`
	INSERT INTO users (login, password, created_at) VALUES (?, ?, ?)
	`, user.Login, user.Password, time.Now().Unix())
	if err != nil {
		// UNIQUE по логину превращаем в доменную ошибку
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrUserExists
		}
		return 0, fmt.Errorf("не удалось создать пользователя: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("не удалось получить ID пользователя: %w", err)
	}

	return int(id), nil
}

// GetUserByLogin возвращает пользователя по логину
func (db *SQLiteDB) GetUserByLogin(login string) (*models.User, error) {
	var user models.User
	err := db.db.QueryRow(`
	SELECT id, login, password FROM users WHERE login = ?
	`, login).Scan(&user.ID, &user.Login, &user.Password)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("не удалось найти пользователя: %w", err)
	}

	return &user, nil
}

// GetUserByID возвращает пользователя по ID
func (db *SQLiteDB) GetUserByID(id int) (*models.User, error) {
	var user models.User
	err := db.db.QueryRow(`
	SELECT id, login, password FROM users WHERE id = ?
	`, id).Scan(&user.ID, &user.Login, &user.Password)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("не удалось найти пользователя: %w", err)
	}

	return &user, nil
}

// SaveCalculation сохраняет запись истории вычислений
func (db *SQLiteDB) SaveCalculation(calc *models.Calculation) (int64, error) {
	if calc.CreatedAt == 0 {
		calc.CreatedAt = time.Now().Unix()
	}

	res, err := db.db.Exec(`
	INSERT INTO calculations (user_id, operation, a, b, result, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`, calc.UserID, calc.Operation, calc.A, calc.B, calc.Result, calc.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("не удалось сохранить вычисление: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("не удалось получить ID вычисления: %w", err)
	}
	calc.ID = id

	return id, nil
}

// ListCalculations возвращает последние вычисления пользователя
func (db *SQLiteDB) ListCalculations(userID, limit int) ([]models.Calculation, error) {
	rows, err := db.db.Query(`
	SELECT id, user_id, operation, a, b, result, created_at
	FROM calculations
	WHERE user_id = ?
	ORDER BY id DESC
	LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить историю вычислений: %w", err)
	}
	defer rows.Close()

	calculations := []models.Calculation{}
	for rows.Next() {
		var calc models.Calculation
		if err := rows.Scan(&calc.ID, &calc.UserID, &calc.Operation, &calc.A, &calc.B, &calc.Result, &calc.CreatedAt); err != nil {
			return nil, fmt.Errorf("не удалось прочитать запись истории: %w", err)
		}
		calculations = append(calculations, calc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при чтении истории: %w", err)
	}

	return calculations, nil
}
