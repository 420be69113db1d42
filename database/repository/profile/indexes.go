package profileRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates indexes for frequently used fields in queries.
func (r *MongoProfileRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "fullName", Value: 1}}},
		{Keys: bson.D{{Key: "hourlyRate", Value: 1}}},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "regions", Value: 1}}},
		{Keys: bson.D{{Key: "isCompleted", Value: 1}}},
		{Keys: bson.D{{Key: "schedule.date", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}
	return nil
}
