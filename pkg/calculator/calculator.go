// Package calculator описывает gRPC-сервис Calculator: интерфейсы
// клиента и сервера, дескриптор сервиса и преобразования моделей.
package calculator

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GGmuzem/calculator-api/pkg/models"
)

// Интерфейс для CalculatorClient
type CalculatorClient interface {
	Calculate(ctx context.Context, in *CalculateRequest, opts ...grpc.CallOption) (*CalculateResponse, error)
}

// Интерфейс для CalculatorServer
type CalculatorServer interface {
	Calculate(ctx context.Context, in *CalculateRequest) (*CalculateResponse, error)
}

// Базовая реализация CalculatorServer
type UnimplementedCalculatorServer struct{}

// Стаб для Calculate
func (s *UnimplementedCalculatorServer) Calculate(ctx context.Context, in *CalculateRequest) (*CalculateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "метод Calculate не реализован")
}

// RegisterCalculatorServer регистрирует сервер Calculator в gRPC
func RegisterCalculatorServer(s *grpc.Server, srv CalculatorServer) {
	s.RegisterService(&_Calculator_serviceDesc, srv)
}

var _Calculator_serviceDesc = grpc.ServiceDesc{
	ServiceName: "calculator.Calculator",
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Calculate",
			Handler:    _Calculator_Calculate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calculator.proto",
}

// Обработчик Calculate
func _Calculator_Calculate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Calculate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/calculator.Calculator/Calculate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Calculate(ctx, req.(*CalculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NewCalculatorClient создает нового клиента для сервиса Calculator
func NewCalculatorClient(cc grpc.ClientConnInterface) CalculatorClient {
	return &calculatorClient{cc}
}

// Реализация клиента
type calculatorClient struct {
	cc grpc.ClientConnInterface
}

// Calculate вызывает Calculate у сервера
func (c *calculatorClient) Calculate(ctx context.Context, in *CalculateRequest, opts ...grpc.CallOption) (*CalculateResponse, error) {
	out := new(CalculateResponse)
	if err := c.cc.Invoke(ctx, "/calculator.Calculator/Calculate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CalculateRequest запрос на вычисление
type CalculateRequest struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
}

// CalculateResponse результат вычисления
type CalculateResponse struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Result    float64 `json:"result"`
}

// ConvertResponseToCalculation конвертирует ответ сервиса в запись истории
func ConvertResponseToCalculation(resp *CalculateResponse, userID int) *models.Calculation {
	return &models.Calculation{
		UserID:    userID,
		Operation: resp.Operation,
		A:         resp.A,
		B:         resp.B,
		Result:    resp.Result,
	}
}

// ConvertRequestToResponse собирает ответ из запроса и результата
func ConvertRequestToResponse(req *CalculateRequest, result float64) *CalculateResponse {
	return &CalculateResponse{
		Operation: req.Operation,
		A:         req.A,
		B:         req.B,
		Result:    result,
	}
}
