package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-agency/internal/compplan"
	"go-agency/internal/events"
	"go-agency/internal/messaging/kafka"
	"go-agency/internal/messaging/kafka/consumer"
	"go-agency/internal/payout"
	"go-agency/internal/promo"
	"go-agency/internal/shared/connection"
	"go-agency/internal/shared/counter"

	"github.com/prometheus/client_golang/prometheus"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const statementConsumerGroup = "go-agency-payout-drafts"

// RunConsumer menyimpan draft payout untuk setiap statement carrier yang selesai di-import.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connectDB()
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	compPlanService := compplan.NewService(sqlDB, compplan.NewRepository(gormDB), logger)
	promoService := promo.NewService(sqlDB, promo.NewRepository(gormDB), redisClient, logger)
	payoutService := payout.NewService(
		sqlDB,
		payout.NewRepository(gormDB),
		compPlanService,
		promoService,
		counter.NewRepository(gormDB),
		kafka.NewOutboxRepository(sqlDB),
		redisClient,
		payout.NewMetrics(prometheus.DefaultRegisterer),
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.StatementIngestedTopic,
		GroupID:        statementConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeStatementIngested(ctx, reader, payoutService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
