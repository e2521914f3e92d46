package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-agency/internal/events"
	"go-agency/internal/payout"
	payouterrors "go-agency/internal/payout/errors"
	"go-agency/internal/shared/contextutil"

	backoff "github.com/cenkalti/backoff/v4"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader dipenuhi oleh *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// DraftSaver dipenuhi oleh payout.Service.
type DraftSaver interface {
	SaveDraft(ctx context.Context, agencyID, actorID string, req payout.CalculateRequest) (payout.SaveDraftResponse, error)
}

// newRetryBackOff dipakai untuk retry pesan yang gagal sementara. Tanpa batas waktu; berhenti saat ctx selesai.
var newRetryBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// ConsumeStatementIngested menghitung ulang draft payout setiap kali statement carrier selesai di-import.
// Pesan yang gagal sementara di-retry di tempat; offset tidak pernah maju melewatinya.
// Berhenti saat ctx dibatalkan.
func ConsumeStatementIngested(
	ctx context.Context,
	reader MessageReader,
	saver DraftSaver,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.statement_ingested")
	log.Info("statement ingested consumer started")

	fetchBackOff := newRetryBackOff()
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("statement ingested consumer stopped")
				return
			}
			wait := fetchBackOff.NextBackOff()
			log.Error("fetch statement ingested message failed",
				zap.Duration("retry_in", wait),
				zap.Error(err),
			)
			if !sleepCtx(ctx, wait) {
				log.Info("statement ingested consumer stopped")
				return
			}
			continue
		}
		fetchBackOff.Reset()

		err = backoff.RetryNotify(
			func() error { return handleStatementIngested(ctx, saver, msg, log) },
			backoff.WithContext(newRetryBackOff(), ctx),
			func(err error, wait time.Duration) {
				log.Warn("retrying statement ingested message",
					zap.Int("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Duration("retry_in", wait),
					zap.Error(err),
				)
			},
		)
		if err != nil {
			// ctx selesai sebelum pesan berhasil; jangan commit, pesan dibaca ulang saat restart
			log.Info("statement ingested consumer stopped",
				zap.Int64("uncommitted_offset", msg.Offset),
				zap.Error(err),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit statement ingested message failed", zap.Error(err))
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// handleStatementIngested mengembalikan nil bila pesan boleh di-commit.
// Pesan rusak dan pesan untuk periode yang sudah final di-commit agar tidak diproses ulang.
func handleStatementIngested(
	ctx context.Context,
	saver DraftSaver,
	msg kafkago.Message,
	log *zap.Logger,
) error {
	var event events.StatementIngestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode statement ingested event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return nil
	}

	ctx = contextutil.WithRequestID(ctx, event.RequestID)
	ctx = contextutil.WithAgencyID(ctx, event.AgencyID)
	resp, err := saver.SaveDraft(ctx, event.AgencyID, event.IngestedBy, payout.CalculateRequest{
		Month:     event.Month,
		Year:      event.Year,
		Producers: event.Producers,
	})
	if err != nil {
		if isPermanent(err) {
			log.Warn("statement ingested event skipped",
				zap.String("agency_id", event.AgencyID),
				zap.String("statement_id", event.StatementID),
				zap.Error(err),
			)
			return nil
		}

		log.Error("save payout drafts from statement failed",
			zap.String("agency_id", event.AgencyID),
			zap.String("statement_id", event.StatementID),
			zap.Error(err),
		)
		return err
	}

	log.Info("payout drafts recalculated from statement",
		zap.String("request_id", event.RequestID),
		zap.String("agency_id", event.AgencyID),
		zap.String("statement_id", event.StatementID),
		zap.String("run_number", resp.RunNumber),
		zap.Int("payouts", len(resp.Payouts)),
		zap.Int("warnings", len(resp.Warnings)),
	)
	return nil
}

func isPermanent(err error) bool {
	return errors.Is(err, payouterrors.ErrPeriodFinalized) ||
		errors.Is(err, payouterrors.ErrInvalidPeriod) ||
		errors.Is(err, payouterrors.ErrInvalidAgencyID)
}
