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

const userCollection = "users"

// MongoUserRepository implements ports.UserRepository on a users collection
// with a unique index on email.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index. Duplicate registrations rely
// on it: concurrent inserts of the same email surface as a duplicate-key
// error, which Create maps to domain.ErrUserExists.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	DisplayName        string             `bson:"displayName"`
	Email              string             `bson:"email"`
	PasswordHash       string             `bson:"passwordHash"`
	Role               string             `bson:"role"`
	RequestedRole      string             `bson:"requestedRole"`
	RoleStatus         string             `bson:"roleStatus"`
	AgentJustification string             `bson:"agentJustification,omitempty"`
	RoleRequestedAt    *time.Time         `bson:"roleRequestedAt,omitempty"`
	RoleApprovedBy     string             `bson:"roleApprovedBy,omitempty"`
	RoleApprovedAt     *time.Time         `bson:"roleApprovedAt,omitempty"`
	Bio                string             `bson:"bio,omitempty"`
	Avatar             string             `bson:"avatar,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		DisplayName:        u.DisplayName,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		Role:               string(u.Role),
		RequestedRole:      string(u.RequestedRole),
		RoleStatus:         string(u.RoleStatus),
		AgentJustification: u.AgentJustification,
		RoleRequestedAt:    u.RoleRequestedAt,
		RoleApprovedBy:     u.RoleApprovedBy,
		RoleApprovedAt:     u.RoleApprovedAt,
		Bio:                u.Bio,
		Avatar:             u.Avatar,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:                 mu.ID.Hex(),
		DisplayName:        mu.DisplayName,
		Email:              mu.Email,
		PasswordHash:       mu.PasswordHash,
		Role:               domain.Role(mu.Role),
		RequestedRole:      domain.Role(mu.RequestedRole),
		RoleStatus:         domain.RoleStatus(mu.RoleStatus),
		AgentJustification: mu.AgentJustification,
		RoleRequestedAt:    mu.RoleRequestedAt,
		RoleApprovedBy:     mu.RoleApprovedBy,
		RoleApprovedAt:     mu.RoleApprovedAt,
		Bio:                mu.Bio,
		Avatar:             mu.Avatar,
		CreatedAt:          mu.CreatedAt,
		UpdatedAt:          mu.UpdatedAt,
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.coll.InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := toMongoUser(user)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}

	updated := *user
	return &updated, nil
}

func (r *MongoUserRepository) CountAll(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *MongoUserRepository) ListPending(ctx context.Context) ([]*domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "roleRequestedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"roleStatus": string(domain.RoleStatusPending)}, opts)
	if err != nil {
		return nil, fmt.Errorf("list pending users: %w", err)
	}
	return decodeUsers(ctx, cursor)
}

func (r *MongoUserRepository) ListAll(ctx context.Context) ([]*domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return decodeUsers(ctx, cursor)
}

func decodeUsers(ctx context.Context, cursor *mongo.Cursor) ([]*domain.User, error) {
	defer cursor.Close(ctx)

	users := make([]*domain.User, 0)
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, mu.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
