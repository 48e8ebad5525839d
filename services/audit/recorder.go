package audit

import (
	"context"
	"time"

	"aspcare/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Recorder receives one entry per booking API call. Implementations must not block the caller for long.
type Recorder interface {
	Record(ctx context.Context, entry models.AuditEntry)
}

// NopRecorder drops every entry.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, models.AuditEntry) {}

// Enqueuer is the part of *asynq.Client the recorder needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueRecorder hands entries to the audit worker through asynq.
type QueueRecorder struct {
	Queue  Enqueuer
	Logger *zap.Logger
}

func NewQueueRecorder(queue Enqueuer, logger *zap.Logger) *QueueRecorder {
	return &QueueRecorder{Queue: queue, Logger: logger}
}

func (r *QueueRecorder) Record(ctx context.Context, entry models.AuditEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}

	task, opts, err := NewAuditTask(entry)
	if err != nil {
		r.Logger.Warn("audit: failed to build task", zap.Error(err))
		return
	}

	// The request context may already be cancelled (superseded lookups are audited too).
	enqCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if _, err := r.Queue.EnqueueContext(enqCtx, task, opts...); err != nil {
		r.Logger.Warn("audit: failed to enqueue entry",
			zap.String("path", entry.Path),
			zap.Error(err))
	}
}
