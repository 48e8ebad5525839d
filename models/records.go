package models

import "time"

// AuditEntry records one call made to the booking API.
type AuditEntry struct {
	ID         string    `bson:"id" json:"id"`
	SessionID  string    `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Method     string    `bson:"method" json:"method"`
	Path       string    `bson:"path" json:"path"`
	Status     int       `bson:"status" json:"status"` // 0 when no response was received
	DurationMs int64     `bson:"durationMs" json:"durationMs"`
	Outcome    string    `bson:"outcome" json:"outcome"` // ok, not_found, failed, network, cancelled
	Error      string    `bson:"error,omitempty" json:"error,omitempty"`
	At         time.Time `bson:"at" json:"at"`
}
