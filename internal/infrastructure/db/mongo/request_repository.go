package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

const requestsCollection = "elevation_requests"

type RequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{coll: db.Collection(requestsCollection)}
}

type mongoRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	RequestedRole string             `bson:"requested_role"`
	Status        string             `bson:"status"`
	RequestedAt   time.Time          `bson:"requested_at"`
	DecidedAt     *time.Time         `bson:"decided_at,omitempty"`
}

func (m mongoRequest) toDomain() *domain.ElevationRequest {
	return &domain.ElevationRequest{
		ID:            m.ID.Hex(),
		Email:         m.Email,
		RequestedRole: domain.Role(m.RequestedRole),
		Status:        domain.RequestStatus(m.Status),
		RequestedAt:   m.RequestedAt,
		DecidedAt:     m.DecidedAt,
	}
}

// Insert persists a new pending request. The partial unique index over
// (email, requested_role, status=pending) makes concurrent duplicate submits
// impossible: the second insert fails with a duplicate-key error.
func (r *RequestRepository) Insert(ctx context.Context, req *domain.ElevationRequest) (*domain.ElevationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoRequest{
		Email:         req.Email,
		RequestedRole: string(req.RequestedRole),
		Status:        string(req.Status),
		RequestedAt:   req.RequestedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicatePending
		}
		return nil, fmt.Errorf("insert request: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *req
	created.ID = oid.Hex()
	return &created, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.ElevationRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return mr.toDomain(), nil
}

// List returns all requests ordered by requested_at descending.
func (r *RequestRepository) List(ctx context.Context) ([]*domain.ElevationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoRequest
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	out := make([]*domain.ElevationRequest, len(docs))
	for i, d := range docs {
		out[i] = d.toDomain()
	}
	return out, nil
}

// TransitionStatus performs an atomic compare-and-swap on the status field.
// When no document matches (the request was decided concurrently, or moved
// since it was read) domain.ErrRequestTerminal is returned.
func (r *RequestRepository) TransitionStatus(ctx context.Context, id string, from, to domain.RequestStatus) (*domain.ElevationRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": string(to)}}
	if to.Terminal() {
		update["$set"].(bson.M)["decided_at"] = time.Now().UTC()
	} else {
		update["$unset"] = bson.M{"decided_at": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mr mongoRequest
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "status": string(from)}, update, opts).Decode(&mr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestTerminal
		}
		return nil, fmt.Errorf("transition request: %w", err)
	}
	return mr.toDomain(), nil
}

// EnsureIndexes creates the partial unique index enforcing at most one
// pending request per (email, requested_role) pair.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
				{Key: "requested_role", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "status", Value: string(domain.RequestPending)}}),
		},
		{Keys: bson.D{{Key: "requested_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
