package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

const auditCollection = "role_audit"

// AuditRepository appends role-change audit records. The collection is
// write-only from the service's perspective.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAudit struct {
	Actor     string    `bson:"actor"`
	Subject   string    `bson:"subject"`
	Action    string    `bson:"action"`
	RequestID string    `bson:"request_id,omitempty"`
	At        time.Time `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, a *domain.RoleAudit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, mongoAudit{
		Actor:     a.Actor,
		Subject:   a.Subject,
		Action:    a.Action,
		RequestID: a.RequestID,
		At:        a.At,
	})
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}
