// Package grpcserver реализует gRPC-сервис Calculator поверх того же
// вычислительного ядра, что и HTTP API.
package grpcserver

import (
	"context"
	"errors"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/GGmuzem/calculator-api/internal/calculate"
	"github.com/GGmuzem/calculator-api/internal/database"
	"github.com/GGmuzem/calculator-api/pkg/calculator"
)

// CalculatorServer реализация gRPC сервера калькулятора
type CalculatorServer struct {
	calculator.UnimplementedCalculatorServer

	db  database.Database
	log *zap.SugaredLogger
}

// NewCalculatorServer создает новый gRPC сервер калькулятора
func NewCalculatorServer(db database.Database) *CalculatorServer {
	return &CalculatorServer{
		db:  db,
		log: zap.S().With("module", "grpcserver"),
	}
}

// Calculate выполняет операцию над парой чисел. Доменные ошибки
// (деление на ноль, неизвестная операция) возвращаются со статусом
// InvalidArgument.
func (s *CalculatorServer) Calculate(ctx context.Context, in *calculator.CalculateRequest) (*calculator.CalculateResponse, error) {
	result, err := calculate.Compute(in.Operation, in.A, in.B)
	if err != nil {
		var calcErr *calculate.CalcError
		if errors.As(err, &calcErr) {
			return nil, status.Error(codes.InvalidArgument, calcErr.Message)
		}
		s.log.Errorf("ошибка вычисления: %v", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := calculator.ConvertRequestToResponse(in, result)

	// gRPC-вызовы анонимны, историю пишем без привязки к пользователю
	if _, err := s.db.SaveCalculation(calculator.ConvertResponseToCalculation(resp, 0)); err != nil {
		s.log.Warnf("не удалось сохранить вычисление в историю: %v", err)
	}

	return resp, nil
}

// Start запускает gRPC сервер на указанном порту и блокируется
func (s *CalculatorServer) Start(port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	calculator.RegisterCalculatorServer(grpcServer, s)

	// Включаем рефлексию для отладки
	reflection.Register(grpcServer)

	s.log.Infof("gRPC сервер запущен на порту :%s", port)
	return grpcServer.Serve(lis)
}
