package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

const ticketCollection = "tickets"

// MongoTicketRepository implements ports.TicketRepository.
type MongoTicketRepository struct {
	coll *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) *MongoTicketRepository {
	return &MongoTicketRepository{coll: db.Collection(ticketCollection)}
}

type mongoTicketResponse struct {
	UserID    string    `bson:"userId"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"createdAt"`
}

type mongoTicket struct {
	ID            primitive.ObjectID    `bson:"_id,omitempty"`
	UserID        string                `bson:"userId"`
	AssignedAgent string                `bson:"assignedAgent,omitempty"`
	Subject       string                `bson:"subject"`
	Description   string                `bson:"description"`
	Category      string                `bson:"category"`
	Priority      string                `bson:"priority"`
	Status        string                `bson:"status"`
	Responses     []mongoTicketResponse `bson:"responses"`
	CreatedAt     time.Time             `bson:"createdAt"`
	UpdatedAt     time.Time             `bson:"updatedAt"`
}

func toMongoTicket(t *domain.Ticket) mongoTicket {
	responses := make([]mongoTicketResponse, 0, len(t.Responses))
	for _, resp := range t.Responses {
		responses = append(responses, mongoTicketResponse(resp))
	}
	return mongoTicket{
		UserID:        t.UserID,
		AssignedAgent: t.AssignedAgent,
		Subject:       t.Subject,
		Description:   t.Description,
		Category:      t.Category,
		Priority:      string(t.Priority),
		Status:        string(t.Status),
		Responses:     responses,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (mt mongoTicket) toDomain() *domain.Ticket {
	responses := make([]domain.TicketResponse, 0, len(mt.Responses))
	for _, resp := range mt.Responses {
		responses = append(responses, domain.TicketResponse(resp))
	}
	return &domain.Ticket{
		ID:            mt.ID.Hex(),
		UserID:        mt.UserID,
		AssignedAgent: mt.AssignedAgent,
		Subject:       mt.Subject,
		Description:   mt.Description,
		Category:      mt.Category,
		Priority:      domain.TicketPriority(mt.Priority),
		Status:        domain.TicketStatus(mt.Status),
		Responses:     responses,
		CreatedAt:     mt.CreatedAt,
		UpdatedAt:     mt.UpdatedAt,
	}
}

func (r *MongoTicketRepository) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	res, err := r.coll.InsertOne(ctx, toMongoTicket(t))
	if err != nil {
		return nil, fmt.Errorf("insert ticket: %w", err)
	}

	created := *t
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoTicketRepository) FindByID(ctx context.Context, id string) (*domain.Ticket, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTicketNotFound
	}

	var mt mongoTicket
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *MongoTicketRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Ticket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list tickets by owner: %w", err)
	}
	return decodeTickets(ctx, cursor)
}

func (r *MongoTicketRepository) ListAll(ctx context.Context) ([]*domain.Ticket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return decodeTickets(ctx, cursor)
}

func (r *MongoTicketRepository) Update(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return nil, domain.ErrTicketNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toMongoTicket(t))
	if err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTicketNotFound
	}

	updated := *t
	return &updated, nil
}

func decodeTickets(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Ticket, error) {
	defer cursor.Close(ctx)

	tickets := make([]*domain.Ticket, 0)
	for cursor.Next(ctx) {
		var mt mongoTicket
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode ticket: %w", err)
		}
		tickets = append(tickets, mt.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}
	return tickets, nil
}
