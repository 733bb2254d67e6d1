package main

import (
	"context"
	"os"
	"time"

	"hr-platform/internal/hr"
	"hr-platform/internal/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	gconfig "github.com/gookit/config/v2"
	gyaml "github.com/gookit/config/v2/yaml"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

const DefaultConfigPath = "config.yaml"

type StorageType string

const (
	StorageTypeMemory   StorageType = "MEMORY"
	StorageTypeDynamoDB StorageType = "DYNAMODB"
	StorageTypePostgres StorageType = "POSTGRES"
)

const PrettyLogFormat = "pretty"

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	API API `mapstructure:"api"`

	PrometheusExportAddress string `mapstructure:"prometheus_address"`

	Storage Storage `mapstructure:"storage"`

	Leave Leave `mapstructure:"leave"`
}

type API struct {
	ListeningAddress string        `mapstructure:"address"`
	ServerTimeout    time.Duration `mapstructure:"server_timeout"`
	MaxRPS           int           `mapstructure:"max_rps"`
}

type Storage struct {
	Type StorageType `mapstructure:"type"`

	// SeedDemoData preloads the demo dataset. Only honored by the MEMORY
	// backend.
	SeedDemoData bool `mapstructure:"seed_demo_data"`

	DynamoDB *DynamoDB `mapstructure:"dynamodb"`
	Postgres *Postgres `mapstructure:"postgres"`
}

type DynamoDB struct {
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Region          string `mapstructure:"region"`

	EmployeesTable     string `mapstructure:"employees_table"`
	LeaveRequestsTable string `mapstructure:"leave_requests_table"`
}

type Postgres struct {
	DSN string `mapstructure:"dsn"`
}

type Leave struct {
	MaxReasonLength      int           `mapstructure:"max_reason_length"`
	QueueExportFrequency time.Duration `mapstructure:"queue_export_frequency"`
}

func LoadConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultConfigPath
	}

	gconfig.WithOptions(
		gconfig.ParseEnv,
		gconfig.Readonly,
		func(opts *gconfig.Options) {
			opts.DecoderConfig = &mapstructure.DecoderConfig{
				TagName:          "mapstructure",
				WeaklyTypedInput: true,
				DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			}
		},
	)
	gconfig.AddDriver(gyaml.Driver)

	err := gconfig.LoadFiles(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	cfg := new(Config)
	err = gconfig.BindStruct("", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "config binding failed")
	}

	err = cfg.validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// validate verifies the loaded config and sets default values for missed fields.
func (c *Config) validate() error {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.API.ListeningAddress == "" {
		// The hosting environment exposes this fixed port.
		c.API.ListeningAddress = "0.0.0.0:7860"
	}
	if c.API.ServerTimeout == 0 {
		c.API.ServerTimeout = 60 * time.Second
	}

	if c.PrometheusExportAddress == "" {
		c.PrometheusExportAddress = ":2112"
	}

	if c.Leave.MaxReasonLength == 0 {
		c.Leave.MaxReasonLength = hr.DefaultMaxReasonLength
	}
	if c.Leave.QueueExportFrequency == 0 {
		c.Leave.QueueExportFrequency = metrics.DefaultQueueExportFrequency
	}

	switch c.Storage.Type {
	case "":
		c.Storage.Type = StorageTypeMemory

	case StorageTypeMemory:

	case StorageTypeDynamoDB:
		if c.Storage.DynamoDB == nil {
			return errors.New("storage.dynamodb is required when storage.type is DYNAMODB")
		}
		if c.Storage.DynamoDB.Region == "" {
			return errors.New("storage.dynamodb.region is required")
		}
		if c.Storage.DynamoDB.EmployeesTable == "" {
			return errors.New("storage.dynamodb.employees_table is required")
		}
		if c.Storage.DynamoDB.LeaveRequestsTable == "" {
			return errors.New("storage.dynamodb.leave_requests_table is required")
		}

	case StorageTypePostgres:
		if c.Storage.Postgres == nil || c.Storage.Postgres.DSN == "" {
			return errors.New("storage.postgres.dsn is required when storage.type is POSTGRES")
		}

	default:
		return errors.Errorf("unknown storage type %s (supported: %s, %s, %s)",
			c.Storage.Type, StorageTypeMemory, StorageTypeDynamoDB, StorageTypePostgres)
	}

	return nil
}

func (c *Config) Retrieve(_ context.Context) (aws.Credentials, error) {
	return aws.Credentials{
		AccessKeyID:     c.Storage.DynamoDB.AccessKeyID,
		SecretAccessKey: c.Storage.DynamoDB.SecretAccessKey,
		Source:          "local config",
	}, nil
}
