package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	studyv1 "studydeck/gen/studydeck/v1"
	"studydeck/internal/async"
	"studydeck/internal/chat"
	"studydeck/internal/common"
	"studydeck/internal/export"
	"studydeck/internal/llm"
	"studydeck/internal/pdf"
	"studydeck/internal/pipeline"
	"studydeck/internal/repository"
	"studydeck/internal/server"
	"studydeck/internal/studygen"
)

func main() {
	// Logger
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	log := zlog.Sugar()

	// structured logger for the inner layers
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Env
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// DB
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	// Repositories
	subjects := repository.NewSubjectRepository(entc, logger)
	docs := repository.NewDocumentRepository(entc, logger)
	artifacts := repository.NewArtifactRepository(entc, logger)
	chats := repository.NewChatRepository(entc, logger)
	stats := repository.NewStatsRepository(entc, logger)

	// Pipeline
	extractor := pdf.NewExtractor(pdf.Config{
		MinWords:      cfg.Extract.MinWords,
		MinAlnumRatio: cfg.Extract.MinAlnumRatio,
		MaxPages:      cfg.Extract.MaxPages,
	}, logger)
	client := llm.NewClient(llm.Config{
		APIKey:       cfg.LLM.APIKey,
		BaseURL:      cfg.LLM.BaseURL,
		Model:        cfg.LLM.Model,
		ChatModel:    cfg.LLM.ChatModel,
		Temperature:  cfg.LLM.Temperature,
		Timeout:      cfg.LLM.Timeout,
		MaxDocChars:  cfg.LLM.MaxDocChars,
		MaxChatChars: cfg.LLM.MaxChatChars,
	}, logger)
	orch := studygen.NewOrchestrator(client, studygen.Config{
		GlobalTimeout: cfg.LLM.GlobalTimeout,
	}, logger)
	proc := pipeline.NewProcessor(extractor, orch, docs, artifacts, logger)
	queue := async.NewProcessorQueue(proc, logger)
	assistant := chat.NewAssistant(client, client.ChatModel(), client.MaxChatChars(), logger)
	exporter := export.NewService(docs, artifacts, logger)

	// gRPC server
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.UnaryContextInterceptor(logger)))
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business service
	svc := server.NewStudyService(server.Deps{
		Subjects:  subjects,
		Documents: docs,
		Artifacts: artifacts,
		Chats:     chats,
		Stats:     stats,
		Queue:     queue,
		Assistant: assistant,
		Exporter:  exporter,
		UploadDir: cfg.Server.UploadDir,
	}, logger)
	studyv1.RegisterStudyServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	queue.Shutdown(drainCtx)
	cancel()
	fmt.Println("stopped.")
}
