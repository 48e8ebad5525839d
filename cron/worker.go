package cron

import (
	"context"
	"fmt"
	"time"

	"aspcare/models"
	"aspcare/services/audit"
	"aspcare/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// auditSink is where consumed audit entries end up.
type auditSink interface {
	Insert(ctx context.Context, entry models.AuditEntry) error
}

// InitAuditWorker runs the audit queue consumer in the background and returns the server
// so the caller can shut it down.
func InitAuditWorker(sink auditSink) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		utils.QueueRedisOpt(),
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				audit.QueueName: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(audit.TypeAuditRecord, handleAuditTask(sink))

	go func() {
		logger.Info("[AuditWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			// Run blocks until shutdown; ErrServerClosed means a clean stop.
			err := srv.Run(mux)
			if err == nil || err == asynq.ErrServerClosed {
				return
			}
			logger.Warn("[AuditWorker] failed to start worker",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[AuditWorker] max retry attempts reached, audit entries will queue up unconsumed")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleAuditTask(sink auditSink) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		entry, err := audit.ParseAuditTask(task)
		if err != nil {
			// A malformed payload will never decode; don't retry it.
			return fmt.Errorf("invalid audit payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := sink.Insert(ctx, entry); err != nil {
			utils.GetLogger().Warn("[AuditHandler] failed to store entry",
				zap.String("id", entry.ID),
				zap.String("path", entry.Path),
				zap.Error(err))
			return err
		}
		return nil
	}
}
