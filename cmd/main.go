package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pocketpay/instruments/internal/clients/users"
	"github.com/pocketpay/instruments/internal/notifier"
	"github.com/pocketpay/instruments/internal/repository"
	"github.com/pocketpay/instruments/internal/service"
	"github.com/pocketpay/instruments/pkg/broker"
	"github.com/pocketpay/instruments/pkg/config"
	"github.com/pocketpay/instruments/pkg/job"
	"github.com/pocketpay/instruments/pkg/logger"
	"github.com/pocketpay/instruments/pkg/postgres"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	requestRepo := repository.NewRequestRepository(pool)
	voucherRepo := repository.NewVoucherRepository(pool)
	outboxRepo := repository.NewOutboxRepository(pool)

	userDirectory := users.NewClient(cfg.UserServiceURL)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationsTopic)
	defer producer.Close()

	recorder := notifier.NewRecorder(outboxRepo)
	dispatcher := notifier.NewDispatcher(outboxRepo, producer, cfg.Jobs.OutboxBatch, cfg.Jobs.PruneAfter)

	requests := service.NewRequestService(requestRepo, userDirectory, recorder, cfg.Requests.DefaultExpiry)
	vouchers := service.NewVoucherService(
		voucherRepo,
		userDirectory,
		recorder,
		service.NewCodeGenerator(voucherRepo),
		service.NewSecretVerifier(),
	)

	jobs := job.NewService()
	jobs.TryRegisterJob(cfg.Jobs.SweepEnabled, "expire payment requests", cfg.Jobs.SweepInterval, sweepCount(requests.CleanupExpired)).
		TryRegisterJob(cfg.Jobs.SweepEnabled, "expire vouchers", cfg.Jobs.SweepInterval, sweepCount(vouchers.CleanupExpired)).
		RegisterJob("dispatch outbox", cfg.Jobs.OutboxInterval, dispatcher.Dispatch).
		RegisterJob("prune outbox", cfg.Jobs.PruneInterval, dispatcher.PrunePublished).
		Start(ctx)

	slog.InfoContext(ctx, "service started")

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

	cancel()
	jobs.Stop()
}

// sweepCount adapts the engines' counting cleanups to the job signature.
func sweepCount(fn func(ctx context.Context) (int64, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := fn(ctx)
		return err
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
