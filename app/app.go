package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/config"
	"github.com/videgrenier/marketplace-service/internal/handler"
	"github.com/videgrenier/marketplace-service/internal/repository"
	"github.com/videgrenier/marketplace-service/internal/server"
	"github.com/videgrenier/marketplace-service/internal/service"
	"github.com/videgrenier/marketplace-service/migrations"
	"github.com/videgrenier/marketplace-service/pkg/kafka"
	"github.com/videgrenier/marketplace-service/pkg/logger"
	"github.com/videgrenier/marketplace-service/pkg/postgres"
	"github.com/videgrenier/marketplace-service/pkg/storage"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "marketplace")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	files, err := storage.NewDiskStore(cfg.Media.Root)
	if err != nil {
		log.Fatal("media store", zap.Error(err))
	}
	drafts := service.NewDraftStore(cfg.Drafts.TTL)

	var events service.EventPublisher = service.NopPublisher{}
	var producer sarama.SyncProducer
	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		events = service.NewKafkaPublisher(producer, log)

		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.MarketplaceConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(repo.IncrementViews, log), log, kafka.EventsTopic)
	}

	svc := service.NewService(repo, drafts, events, log)

	h := handler.New(svc, files, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	stopConsume()
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
