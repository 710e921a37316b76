package main

import (
	"go.uber.org/zap"

	"github.com/GGmuzem/calculator-api/internal/config"
	"github.com/GGmuzem/calculator-api/internal/database"
	"github.com/GGmuzem/calculator-api/internal/grpcserver"
	"github.com/GGmuzem/calculator-api/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.Load()

	// Инициализируем базу данных
	db, err := database.New(cfg.DBPath)
	if err != nil {
		zap.S().Fatalf("ошибка инициализации базы данных: %v", err)
	}
	defer db.Close()

	if err := db.MigrateDB(); err != nil {
		zap.S().Fatalf("ошибка миграции базы данных: %v", err)
	}

	// gRPC сервер в отдельной горутине
	grpcSrv := grpcserver.NewCalculatorServer(db)
	go func() {
		if err := grpcSrv.Start(cfg.GRPCPort); err != nil {
			zap.S().Fatalf("ошибка запуска gRPC сервера: %v", err)
		}
	}()

	// HTTP сервер блокирует основную горутину
	srv := server.New(cfg, db)
	if err := srv.Run(); err != nil {
		zap.S().Fatalf("ошибка запуска HTTP сервера: %v", err)
	}
}
