package audit

import (
	"encoding/json"

	"aspcare/models"

	"github.com/hibiken/asynq"
)

const (
	TypeAuditRecord = "audit:record"
	QueueName       = "audit"
)

func NewAuditTask(entry models.AuditEntry) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(entry)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAuditRecord, b)
	opts := []asynq.Option{asynq.Queue(QueueName), asynq.MaxRetry(3)}

	return task, opts, nil
}

// ParseAuditTask decodes the entry carried by an audit task.
func ParseAuditTask(task *asynq.Task) (models.AuditEntry, error) {
	var entry models.AuditEntry
	err := json.Unmarshal(task.Payload(), &entry)
	return entry, err
}
