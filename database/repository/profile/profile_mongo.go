package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"superlaw/database"
	"superlaw/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	db := database.MongoClient.Database("superlaw")
	repo := &MongoProfileRepo{
		coll:     db.Collection("profiles"),
		counters: db.Collection("counters"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		// Index creation failures are logged by the driver; queries still work.
		fmt.Println(err)
	}
	return repo
}

func (r *MongoProfileRepo) Create(ctx context.Context, profile *models.LawyerProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile for user %s: %w", profile.UserID, err)
	}
	return nil
}

func (r *MongoProfileRepo) GetByID(ctx context.Context, id string) (*models.LawyerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var profile models.LawyerProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &profile, nil
}

func (r *MongoProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.LawyerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var profile models.LawyerProfile
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *MongoProfileRepo) Update(ctx context.Context, profile *models.LawyerProfile) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	profile.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": profile.ID}, profile)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", profile.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
