package main

import (
	"db-console-api/internal/config"
	"db-console-api/pkg/server"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var connections *server.ConnectionManager

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	connections = server.GetConnectionManager()
	if err := connections.Initialize(cfg); err != nil {
		// Retried on the first invocation
		logrus.WithError(err).Error("Failed to initialize container")
	}
}

func main() {
	awslambda.Start(server.LambdaHandler(connections, server.RecordsDispatcher))
}
