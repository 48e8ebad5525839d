// File: database/repository/records/interface.go
package recordsRepo

import (
	"context"
	"time"

	"aspcare/database"
	"aspcare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository stores one document per booking API call.
type AuditRepository interface {
	Insert(ctx context.Context, entry models.AuditEntry) error
	GetByID(ctx context.Context, id string) (*models.AuditEntry, error)
	GetBySession(ctx context.Context, sessionID string, limit int64) ([]models.AuditEntry, error)
	EnsureIndexes() error
}

// auditRetention is how long entries live before the TTL index removes them.
const auditRetention = 30 * 24 * time.Hour

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo returns an AuditRepository backed by the global Mongo client.
func NewMongoAuditRepo(dbName string) AuditRepository {
	db := database.MongoClient.Database(dbName)
	return &mongoAuditRepo{
		coll: db.Collection("upstream_calls"),
	}
}
