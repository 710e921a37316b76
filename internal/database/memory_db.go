package database

import (
	"sort"
	"sync"
	"time"

	"github.com/GGmuzem/calculator-api/pkg/models"
)

// MemoryDB реализация БД в памяти без использования SQLite.
// Используется в тестах, чтобы не создавать файлы на диске.
type MemoryDB struct {
	users        map[string]*models.User
	userByID     map[int]*models.User
	calculations []models.Calculation
	mutex        sync.RWMutex
	userIDSeq    int
	calcIDSeq    int64
}

// NewMemoryDB создает новую in-memory БД
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users:     make(map[string]*models.User),
		userByID:  make(map[int]*models.User),
		userIDSeq: 1,
		calcIDSeq: 1,
	}
}

// Close просто заглушка для совместимости
func (db *MemoryDB) Close() error {
	return nil
}

// MigrateDB для in-memory не требуется миграция
func (db *MemoryDB) MigrateDB() error {
	return nil
}

// CreateUser создает нового пользователя
func (db *MemoryDB) CreateUser(user *models.User) (int, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, exists := db.users[user.Login]; exists {
		return 0, ErrUserExists
	}

	// Назначаем ID
	userID := db.userIDSeq
	db.userIDSeq++

	stored := &models.User{
		ID:       userID,
		Login:    user.Login,
		Password: user.Password,
	}
	db.users[user.Login] = stored
	db.userByID[userID] = stored

	return userID, nil
}

// GetUserByLogin возвращает пользователя по логину
func (db *MemoryDB) GetUserByLogin(login string) (*models.User, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	user, exists := db.users[login]
	if !exists {
		return nil, ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// GetUserByID возвращает пользователя по ID
func (db *MemoryDB) GetUserByID(id int) (*models.User, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	user, exists := db.userByID[id]
	if !exists {
		return nil, ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// SaveCalculation сохраняет запись истории вычислений
func (db *MemoryDB) SaveCalculation(calc *models.Calculation) (int64, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	calc.ID = db.calcIDSeq
	db.calcIDSeq++
	if calc.CreatedAt == 0 {
		calc.CreatedAt = time.Now().Unix()
	}

	db.calculations = append(db.calculations, *calc)

	return calc.ID, nil
}

// ListCalculations возвращает последние вычисления пользователя
func (db *MemoryDB) ListCalculations(userID, limit int) ([]models.Calculation, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	result := []models.Calculation{}
	for _, calc := range db.calculations {
		if calc.UserID == userID {
			result = append(result, calc)
		}
	}

	// От новых к старым, как в SQLite реализации
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}
