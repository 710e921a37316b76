// Утилита для вызова gRPC-сервиса Calculator из командной строки:
//
//	agent <operation> <a> <b>
//
// Адрес сервера берется из GRPC_SERVER (по умолчанию localhost:9090).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/GGmuzem/calculator-api/internal/grpcclient"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "использование: agent <operation> <a> <b>")
		os.Exit(2)
	}

	operation := os.Args[1]
	a, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "некорректный операнд a: %v\n", err)
		os.Exit(2)
	}
	b, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "некорректный операнд b: %v\n", err)
		os.Exit(2)
	}

	serverAddr := os.Getenv("GRPC_SERVER")
	if serverAddr == "" {
		serverAddr = "localhost:9090"
	}

	client, err := grpcclient.New(serverAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "не удалось подключиться к %s: %v\n", serverAddr, err)
		os.Exit(1)
	}
	defer client.Close()

	result, err := client.Calculate(operation, a, b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ошибка вычисления: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result)
}
