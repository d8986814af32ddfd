package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/biblioteca-service/config"
	"github.com/Astemirdum/biblioteca-service/internal/handler"
	"github.com/Astemirdum/biblioteca-service/internal/repository"
	"github.com/Astemirdum/biblioteca-service/internal/server"
	"github.com/Astemirdum/biblioteca-service/internal/service"
	"github.com/Astemirdum/biblioteca-service/migrations"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/pkg/logger"
	"github.com/Astemirdum/biblioteca-service/pkg/postgres"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "biblioteca")
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db connect")
	}
	defer db.Close()

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled() {
		if producer, err = kafka.NewProducer(cfg.Kafka); err != nil {
			return errors.Wrap(err, "kafka producer")
		}
		defer func() {
			_ = producer.Close()
		}()
	}

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repository")
	}
	svc := service.NewService(repo, producer, log)
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server")
		}
		return nil
	})
	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.ActivityConsumerGroup)
		if err != nil {
			return errors.Wrap(err, "kafka consumer")
		}
		defer func() {
			_ = consumer.Close()
		}()
		g.Go(func() error {
			return kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.IngestActivity, log), kafka.ActivitiesTopic)
		})
	}
	log.Info("http server start ON",
		zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case s := <-sig:
		log.Info("graceful shutdown", zap.Stringer("signal", s))
	case <-gCtx.Done():
		log.Error("service stopped", zap.Error(gCtx.Err()))
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if err := srv.Stop(closeCtx); err != nil {
		log.Error("server stop", zap.Error(err))
	}
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("graceful shutdown finished")
	return nil
}
