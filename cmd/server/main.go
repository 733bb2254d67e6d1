package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hr-platform/internal/hr"
	"hr-platform/internal/metrics"
	dynamostore "hr-platform/internal/storage/dynamodb"
	"hr-platform/internal/storage/memory"
	pgstore "hr-platform/internal/storage/postgres"
	api "hr-platform/pkg/restapi"

	awsconf "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Listen to termination signals.
	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Initialize config.
	config, err := LoadConfig()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config cannot be loaded")
	}

	// Initialize logger.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if config.LogFormat == PrettyLogFormat {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	lvl, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		zlog.Fatal().Err(err).Msg("invalid log level")
	}

	zlog.Logger = zlog.Logger.Level(lvl)
	logger := zlog.Logger

	// Initialize the storage backend.
	store := initializeStore(ctx, config, logger)

	service := hr.NewService(store, logger, hr.ServiceConfig{
		MaxReasonLength: config.Leave.MaxReasonLength,
	})

	// Export leave queue sizes in the background.
	collector := metrics.NewLeaveQueueCollector(ctx, logger, countLeaveByStatus(store), []string{
		string(hr.LeaveStatusPending),
		string(hr.LeaveStatusApproved),
		string(hr.LeaveStatusRejected),
	}, config.Leave.QueueExportFrequency)
	collector.RunBackgroundUpdate()

	// Initialize the REST server.
	router := api.NewRouter(api.RouterOpts{
		Employees: service,
		Leave:     service,
		Timeout:   config.API.ServerTimeout,
		MaxRPS:    config.API.MaxRPS,
	})

	srv := &http.Server{
		Addr:              config.API.ListeningAddress,
		Handler:           router,
		ReadTimeout:       20 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	go func() {
		zlog.Info().Str("address", config.API.ListeningAddress).Msg("starting the server")

		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server listen failed")
		}
	}()

	// Export Prometheus metrics.
	go func() {
		zlog.Info().Str("address", config.PrometheusExportAddress).Msg("starting the prometheus exporter")

		metricSrv := &http.Server{
			Addr:              config.PrometheusExportAddress,
			Handler:           http.DefaultServeMux,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
		}

		http.DefaultServeMux.Handle("/metrics", promhttp.Handler())
		err := metricSrv.ListenAndServe()
		if err != nil {
			zlog.Error().Err(err).Msg("prometheus exporter failed")
		}
	}()

	<-stop
	cancel()

	shutdownCtx, shutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdown()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		zlog.Error().Err(err).Msg("server shutdown failed")
	}
}

func initializeStore(ctx context.Context, config *Config, logger zerolog.Logger) hr.Store {
	switch config.Storage.Type {
	case StorageTypeMemory:
		store := memory.NewStore()
		if config.Storage.SeedDemoData {
			store.Seed(hr.DemoEmployees(), hr.DemoLeaveRequests())
			logger.Info().Msg("seeded the demo dataset")
		}

		return store

	case StorageTypeDynamoDB:
		var awsOpts []func(*awsconf.LoadOptions) error
		if config.Storage.DynamoDB.AccessKeyID != "" {
			// Load AWS config with credentials when AccessKeyID is not empty.
			// Otherwise, we let SDK to pick credentials from available sources automatically.
			awsOpts = append(awsOpts, awsconf.WithCredentialsProvider(config))
		}

		awsOpts = append(awsOpts, awsconf.WithRegion(config.Storage.DynamoDB.Region))

		awsConfig, err := awsconf.LoadDefaultConfig(ctx, awsOpts...)
		if err != nil {
			zlog.Fatal().Err(err).Msg("failed to load AWS config")
		}

		client := dynamodb.NewFromConfig(awsConfig)

		return dynamostore.NewStore(client, config.Storage.DynamoDB.EmployeesTable, config.Storage.DynamoDB.LeaveRequestsTable)

	case StorageTypePostgres:
		store, err := pgstore.Open(config.Storage.Postgres.DSN)
		if err != nil {
			zlog.Fatal().Err(err).Msg("failed to open the postgres storage")
		}

		return store

	default:
		zlog.Fatal().Msg("invalid storage type")
		return nil
	}
}

func countLeaveByStatus(store hr.Store) metrics.CountByStatusFunc {
	return func(ctx context.Context, status string) (int, error) {
		parsed, err := hr.ParseLeaveStatus(status)
		if err != nil {
			return 0, err
		}

		requests, err := store.ListLeaveRequests(ctx, hr.LeaveFilter{Status: &parsed})
		if err != nil {
			return 0, err
		}

		return len(requests), nil
	}
}
