package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

const auditCollection = "audit_events"

// MongoAuditRepository appends audit events. Events are write-only from the
// application's point of view; reads happen out of band.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Action    string    `bson:"action"`
	ActorID   string    `bson:"actorId,omitempty"`
	SubjectID string    `bson:"subjectId"`
	Detail    string    `bson:"detail,omitempty"`
	At        time.Time `bson:"at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := mongoAuditEvent{
		Action:    string(event.Action),
		ActorID:   event.ActorID,
		SubjectID: event.SubjectID,
		Detail:    event.Detail,
		At:        event.At,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
