package audit

import (
	"context"
	"errors"
	"testing"

	"aspcare/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEnqueuer struct {
	tasks  []*asynq.Task
	ctxErr error
	err    error
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.ctxErr = ctx.Err()
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, f.err
}

func TestQueueRecorder_EnqueuesEntry(t *testing.T) {
	q := &fakeEnqueuer{}
	r := NewQueueRecorder(q, zap.NewNop())

	r.Record(context.Background(), models.AuditEntry{Method: "GET", Path: "/rates", Status: 200, Outcome: "ok"})

	require.Len(t, q.tasks, 1)
	assert.Equal(t, TypeAuditRecord, q.tasks[0].Type())

	entry, err := ParseAuditTask(q.tasks[0])
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.At.IsZero())
	assert.Equal(t, "/rates", entry.Path)
}

func TestQueueRecorder_SurvivesCancelledRequest(t *testing.T) {
	q := &fakeEnqueuer{}
	r := NewQueueRecorder(q, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Record(ctx, models.AuditEntry{Path: "/rates", Outcome: "cancelled"})

	require.Len(t, q.tasks, 1)
	assert.NoError(t, q.ctxErr)
}

func TestQueueRecorder_EnqueueFailureIsSwallowed(t *testing.T) {
	q := &fakeEnqueuer{err: errors.New("redis down")}
	r := NewQueueRecorder(q, zap.NewNop())

	assert.NotPanics(t, func() {
		r.Record(context.Background(), models.AuditEntry{Path: "/rates"})
	})
}
