// Package server собирает HTTP-сервер сервиса: маршруты, middleware
// и метрики поверх обработчиков из пакета handlers.
package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/GGmuzem/calculator-api/internal/auth"
	"github.com/GGmuzem/calculator-api/internal/calculate"
	"github.com/GGmuzem/calculator-api/internal/config"
	"github.com/GGmuzem/calculator-api/internal/database"
	"github.com/GGmuzem/calculator-api/internal/handlers"
)

// Server HTTP-сервер калькулятора
type Server struct {
	cfg      *config.Config
	handlers *handlers.Handler
	auth     *auth.Auth
	metrics  *Metrics
	log      *zap.SugaredLogger
}

// New создает сервер поверх хранилища
func New(cfg *config.Config, db database.Database) *Server {
	a := auth.New(cfg.JWTSecret, cfg.TokenTTL, db)

	return &Server{
		cfg:      cfg,
		handlers: handlers.New(db, a),
		auth:     a,
		metrics:  NewMetrics(),
		log:      zap.S().With("module", "server"),
	}
}

// Router собирает таблицу маршрутов
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.loggingMiddleware)

	// Проверка работоспособности
	router.HandleFunc("/health", s.handlers.Health).Methods("GET")

	// Арифметические операции: по одному маршруту на операцию
	for _, operation := range calculate.Operations {
		router.HandleFunc("/calc/"+operation, s.instrument(operation, s.handlers.Calc(operation))).Methods("POST")
	}

	// Аутентификация и история вычислений
	router.HandleFunc("/api/v1/register", s.handlers.Register).Methods("POST")
	router.HandleFunc("/api/v1/login", s.handlers.Login).Methods("POST")
	router.HandleFunc("/api/v1/history", s.auth.Middleware(s.handlers.History)).Methods("GET")

	// Метрики
	router.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	return router
}

// Run запускает HTTP-сервер и блокируется до его остановки
func (s *Server) Run() error {
	addr := ":" + s.cfg.HTTPPort
	s.log.Infof("HTTP сервер запущен на %s", addr)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	return srv.ListenAndServe()
}
