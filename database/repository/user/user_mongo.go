package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"superlaw/database"
	"superlaw/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.MongoClient.Database("superlaw").Collection("users")
	repo := &MongoUserRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		// Index creation failures are logged by the driver; queries still work.
		fmt.Println(err)
	}
	return repo
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tokenHash", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}
	return nil
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"tokenHash": tokenHash})
}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepo) SetEmailConfirmed(ctx context.Context, userID string) error {
	return r.setFields(ctx, userID, bson.M{"emailConfirmed": true})
}

func (r *MongoUserRepo) SetTokenHash(ctx context.Context, userID, tokenHash string) error {
	return r.setFields(ctx, userID, bson.M{"tokenHash": tokenHash})
}

func (r *MongoUserRepo) setFields(ctx context.Context, userID string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": userID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
