package database

import (
	"context"
	"os"

	"topup_store/internal/infrastructure/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type Options struct {
	Region string
	// Endpoint points the client at DynamoDB Local, e.g. http://dynamodb:8000.
	Endpoint string
}

// ConnectDynamoDB creates a DynamoDB client and exits the process when the AWS config cannot load.
func ConnectDynamoDB(ctx context.Context, opts Options) *dynamodb.Client {
	cfg, err := NewAWSConfig(ctx, opts)
	if err != nil {
		logger.L().Fatalf("[database][dynamodb] failed to create config err=%v", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
}

func NewAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	// DynamoDB Local does not validate credentials, but the SDK requires them.
	if opts.Endpoint != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)))
		logger.L().Infof("[database][dynamodb] using local endpoint=%s region=%s", opts.Endpoint, region)
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
