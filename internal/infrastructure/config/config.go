// Package config loads the process configuration from environment
// variables. A .env file, when present, is loaded by the godotenv autoload
// import in main.
package config

import "github.com/caarlos0/env/v10"

type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	// DynamoDBEndpoint points the client at a local DynamoDB when set
	// (e.g. http://dynamodb:8000).
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
