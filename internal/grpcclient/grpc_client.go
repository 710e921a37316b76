// Package grpcclient содержит клиента gRPC-сервиса Calculator,
// используемого утилитой cmd/agent.
package grpcclient

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/GGmuzem/calculator-api/pkg/calculator"
)

// requestTimeout таймаут одного вызова
const requestTimeout = 5 * time.Second

// Client клиент gRPC-сервиса Calculator
type Client struct {
	client calculator.CalculatorClient
	conn   *grpc.ClientConn
}

// New создает клиента и устанавливает соединение с сервером
func New(serverAddr string) (*Client, error) {
	// Соединение без TLS, сервис внутренний. Сообщения сервиса не
	// protobuf, поэтому явно запрашиваем JSON-кодек.
	conn, err := grpc.Dial(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(calculator.CodecName)),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		client: calculator.NewCalculatorClient(conn),
		conn:   conn,
	}, nil
}

// Close закрывает соединение с сервером
func (c *Client) Close() error {
	return c.conn.Close()
}

// Calculate выполняет операцию на сервере и возвращает результат
func (c *Client) Calculate(operation string, a, b float64) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.client.Calculate(ctx, &calculator.CalculateRequest{
		Operation: operation,
		A:         a,
		B:         b,
	})
	if err != nil {
		return 0, err
	}

	return resp.Result, nil
}
