package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/byteZorvin/piltover/internal/access"
	"github.com/byteZorvin/piltover/internal/fact"
	"github.com/byteZorvin/piltover/internal/metrics"
	"github.com/byteZorvin/piltover/internal/model"
	"github.com/byteZorvin/piltover/internal/program"
	"github.com/byteZorvin/piltover/internal/repository/clickhouse"
	"github.com/byteZorvin/piltover/internal/service"
	"github.com/byteZorvin/piltover/internal/snos"
	"github.com/byteZorvin/piltover/internal/state"
	"github.com/byteZorvin/piltover/internal/transport"
)

var config struct {
	GRPCAddr string `long:"grpc-addr" env:"SETTLEMENT_GRPC_ADDR" description:"grpc addr" default:":8000"`
	RestAddr string `long:"rest-addr" env:"SETTLEMENT_REST_ADDR" description:"rest addr" default:":8001"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"SETTLEMENT_CLICKHOUSE_DSN" description:"ClickHouse DSN"`

	Owner     string   `long:"owner" env:"SETTLEMENT_OWNER" description:"owner address" required:"true"`
	Operators []string `long:"operator" env:"SETTLEMENT_OPERATORS" env-delim:"," description:"operator addresses"`

	ProgramHash string `long:"program-hash" env:"SETTLEMENT_PROGRAM_HASH" description:"trusted program hash"`
	ConfigHash  string `long:"config-hash" env:"SETTLEMENT_CONFIG_HASH" description:"trusted config hash"`

	EthRPCURL        string        `long:"eth-rpc-url" env:"SETTLEMENT_ETH_RPC_URL" description:"Ethereum RPC URL for the fact registry"`
	FactRegistryAddr string        `long:"fact-registry" env:"SETTLEMENT_FACT_REGISTRY" description:"fact registry contract address"`
	FactPollInterval time.Duration `long:"fact-poll-interval" env:"SETTLEMENT_FACT_POLL_INTERVAL" description:"fact registry poll interval" default:"10s"`
	FactPollAttempts int           `long:"fact-poll-attempts" env:"SETTLEMENT_FACT_POLL_ATTEMPTS" description:"fact registry poll attempts per update" default:"3"`

	SkipPrevBlockHashCheck bool `long:"skip-prev-block-hash-check" env:"SETTLEMENT_SKIP_PREV_BLOCK_HASH_CHECK" description:"accept outputs whose previous block hash does not match"`
	StrictSegments         bool `long:"strict-segments" env:"SETTLEMENT_STRICT_SEGMENTS" description:"reject truncated message segments instead of dropping incomplete records"`

	MsgFlushSize     int           `long:"msg-flush-size" env:"SETTLEMENT_MSG_FLUSH_SIZE" description:"message journal batch size" default:"500"`
	MsgFlushInterval time.Duration `long:"msg-flush-interval" env:"SETTLEMENT_MSG_FLUSH_INTERVAL" description:"message journal flush interval" default:"5s"`
	MsgFlushRPS      int           `long:"msg-flush-rps" env:"SETTLEMENT_MSG_FLUSH_RPS" description:"message journal flush rate limit" default:"10"`
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if config.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, logger); err != nil {
		logger.Fatal("settlement service failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Error("repository not closed", zap.Error(closeErr))
		}
	}()

	gate := access.NewRegistry(logger, config.Owner)
	for _, operator := range config.Operators {
		if err := gate.RegisterOperator(config.Owner, operator); err != nil {
			return fmt.Errorf("register operator %s: %w", operator, err)
		}
	}

	programs := program.NewRegistry(logger)
	if config.ProgramHash != "" || config.ConfigHash != "" {
		info, err := parseProgramInfo(config.ProgramHash, config.ConfigHash)
		if err != nil {
			return err
		}
		programs.SetInfo(info)
	}

	facts, closeFacts, err := newFactChecker(logger)
	if err != nil {
		return err
	}
	defer closeFacts()

	var decodeOpts []snos.Option
	if config.StrictSegments {
		decodeOpts = append(decodeOpts, snos.WithStrictSegments())
	}

	tracker := state.NewTracker(logger,
		state.WithPreviousBlockHashCheck(!config.SkipPrevBlockHashCheck),
	)

	svc := service.NewSettlementService(
		logger,
		gate,
		snos.NewDecoder(decodeOpts...),
		programs,
		facts,
		tracker,
		repo,
		metrics.NewSettlement(),
		service.MessageBatchConfig{
			FlushSize:     config.MsgFlushSize,
			FlushInterval: config.MsgFlushInterval,
			FlushRPS:      config.MsgFlushRPS,
		},
		service.FactPollConfig{
			Interval: config.FactPollInterval,
			Attempts: config.FactPollAttempts,
		},
	)
	if err := svc.RecoverState(ctx); err != nil {
		return err
	}
	svc.Start(ctx)
	defer svc.Stop()

	return serve(ctx, logger, svc)
}

func parseProgramInfo(programHash, configHash string) (program.Info, error) {
	ph, err := model.HexToFelt(programHash)
	if err != nil {
		return program.Info{}, fmt.Errorf("parse program hash: %w", err)
	}
	ch, err := model.HexToFelt(configHash)
	if err != nil {
		return program.Info{}, fmt.Errorf("parse config hash: %w", err)
	}
	return program.Info{ProgramHash: ph, ConfigHash: ch}, nil
}

// newFactChecker builds the fact gate. Without an Ethereum RPC URL facts
// are accepted unchecked.
func newFactChecker(logger *zap.Logger) (service.FactChecker, func(), error) {
	if config.EthRPCURL == "" {
		logger.Info("no ethereum rpc configured, fact checks disabled")
		return fact.NoopChecker{}, func() {}, nil
	}
	registry, err := fact.NewEthereumRegistry(logger, config.EthRPCURL, config.FactRegistryAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("init fact registry: %w", err)
	}
	return registry, registry.Close, nil
}

func serve(ctx context.Context, logger *zap.Logger, svc *service.SettlementService) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	healthpb.RegisterHealthServer(grpcServer, health.NewServer())

	socket, err := net.Listen("tcp", config.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", config.GRPCAddr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("start grpc server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down grpc server")
		grpcServer.GracefulStop()
	}()

	mux := http.NewServeMux()
	transport.NewHandler(logger, svc).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
