package config

import (
	"os"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
}

// GetServerlessConfig detects the serverless runtime from the environment
func GetServerlessConfig() *ServerlessConfig {
	return &ServerlessConfig{
		IsLambda:     isRunningInLambda(),
		FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		Region:       os.Getenv("AWS_REGION"),
		Stage:        GetEnv("STAGE", "dev"),
	}
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return isRunningInLambda()
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless caps the pool to one connection per execution
// environment and switches to JSON logs unless LOG_FORMAT is set explicitly
func AdaptConfigForServerless(config *Config) *Config {
	if !IsServerlessMode() {
		return config
	}

	config.Database.MaxOpenConns = 1
	config.Database.MaxIdleConns = 1

	if os.Getenv("LOG_FORMAT") == "" {
		config.Logging.Format = "json"
	}

	return config
}

// GetOptimizedConfig returns configuration optimized for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	return AdaptConfigForServerless(config), nil
}
