package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/photoclub/membership-system/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	IsAdmin      bool               `bson:"is_admin"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

// EnsureIndexes creates the unique index on username (closing the
// check-then-insert registration race at the store level) and the text
// index backing the admin directory search. Safe to call at every startup.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "username", Value: "text"}},
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.UserAccount) (*domain.UserAccount, error) {
	doc := mongoUser{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = domain.UserID(oid.Hex())
	}
	return &created, nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.UserAccount, error) {
	oid, err := objectID(id)
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

func (r *MongoUserRepository) Search(ctx context.Context, query string, limit int64) ([]domain.UserSummary, error) {
	filter := bson.M{}
	if query != "" {
		filter["username"] = primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []domain.UserSummary{}
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		summaries = append(summaries, domain.UserSummary{
			ID:       mu.ID.Hex(),
			Username: mu.Username,
			IsAdmin:  mu.IsAdmin,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return summaries, nil
}

// SetAdmin flips the admin flag and reports the matched document count.
// A malformed or unknown id matches nothing, which is a no-op by design
// of the callers, not an error here.
func (r *MongoUserRepository) SetAdmin(ctx context.Context, id domain.UserID, isAdmin bool) (int64, error) {
	oid, err := objectID(id)
	if err != nil {
		return 0, nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"is_admin":   isAdmin,
			"updated_at": time.Now().UTC().Unix(),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("set admin: %w", err)
	}
	return res.MatchedCount, nil
}

// objectID converts the opaque identifier back to the store's native form.
func objectID(id domain.UserID) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id.String())
}

func (mu *mongoUser) toDomain() *domain.UserAccount {
	return &domain.UserAccount{
		ID:           domain.UserID(mu.ID.Hex()),
		Username:     mu.Username,
		PasswordHash: mu.PasswordHash,
		IsAdmin:      mu.IsAdmin,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
