package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	spellwizardv1alpha1 "github.com/KirkDiggler/rpg-spellwizard/internal/api/spellwizard/v1alpha1"
	"github.com/KirkDiggler/rpg-spellwizard/internal/clients/external"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/handlers/spellwizard/v1alpha1"
	"github.com/KirkDiggler/rpg-spellwizard/internal/orchestrators/spellwizard"
	"github.com/KirkDiggler/rpg-spellwizard/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-spellwizard/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-spellwizard/internal/pkg/telemetry"
	redisclient "github.com/KirkDiggler/rpg-spellwizard/internal/redis"
	spelldraft "github.com/KirkDiggler/rpg-spellwizard/internal/repositories/spell_draft"
)

const serviceName = "spellwizard"

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the spell wizard gRPC server. Configuration is read from SPELLWIZARD_* environment variables.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port (overrides SPELLWIZARD_PORT)")
}

// loadServerConfig reads the environment, applies flag overrides and validates the result
func loadServerConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		port, err := cmd.Flags().GetInt("port")
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid port flag")
		}
		cfg.Port = port
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: serviceName,
		Endpoint:    cfg.OTelEndpoint,
		Enabled:     cfg.OTelEnabled,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	spellRepo, closeRepo, err := newSpellRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	externalClient, err := external.New(&external.Config{
		BaseURL:     cfg.SRDBaseURL,
		HTTPTimeout: cfg.SRDTimeout,
		CacheTTL:    cfg.SRDCacheTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create srd client: %w", err)
	}

	orchestrator, err := spellwizard.NewOrchestrator(&spellwizard.Config{
		SpellRepo:      spellRepo,
		ExternalClient: externalClient,
		IDGenerator:    idgen.NewUUID("spell"),
		Clock:          clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create spell wizard orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SpellWizardService: orchestrator,
	})
	if err != nil {
		return fmt.Errorf("failed to create spell wizard handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	grpcLogger := telemetry.GRPCLogger(logger)
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandlerContext(recoverPanic),
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger, logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger, logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)

	spellwizardv1alpha1.RegisterSpellWizardServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(spellwizardv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port, "storage", cfg.Storage)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newSpellRepository opens the configured storage backend
func newSpellRepository(ctx context.Context, cfg *Config) (spelldraft.Repository, func(), error) {
	switch cfg.Storage {
	case StorageSQLite:
		db, err := spelldraft.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		closeDB := func() {
			if err := db.Close(); err != nil {
				slog.Warn("Failed to close sqlite", "error", err)
			}
		}
		return spelldraft.NewSQLiteRepository(db), closeDB, nil

	default:
		client, err := redisclient.NewClient(cfg.RedisEndpoints, &redisclient.Options{PoolSize: cfg.RedisPoolSize})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redisclient.Ping(ctx, client); err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				slog.Warn("Failed to close redis client", "error", err)
			}
		}
		return spelldraft.NewRedisRepository(client), closeClient, nil
	}
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "Recovered from panic in gRPC handler", "panic", p)
	return status.Error(codes.Internal, "internal server error")
}
