package profileRepo

import (
	"context"
	"fmt"
	"time"

	"superlaw/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoProfileRepo) Search(ctx context.Context, criteria SearchCriteria) ([]models.LawyerProfileView, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Only finished profiles are visible in the directory.
	matchFilter := bson.M{"isCompleted": true}
	if criteria.Name != "" {
		matchFilter["fullName"] = bson.M{"$regex": criteria.Name, "$options": "i"}
	}
	if len(criteria.Categories) > 0 {
		matchFilter["categories"] = bson.M{"$in": criteria.Categories}
	}
	if len(criteria.Regions) > 0 {
		matchFilter["regions"] = bson.M{"$in": criteria.Regions}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: matchFilter}},
		// Resolve category and region ids to their display names.
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "legalCategories",
			"localField":   "categories",
			"foreignField": "id",
			"as":           "categoryItems",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "judicialRegions",
			"localField":   "regions",
			"foreignField": "id",
			"as":           "regionItems",
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"id":            1,
			"fullName":      1,
			"imageUrl":      1,
			"hourlyRate":    1,
			"isJunior":      1,
			"categoryItems": 1,
			"regionItems":   1,
		}}},
		bson.D{{Key: "$sort", Value: sortSpec(criteria.Sort)}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("profile search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var views []models.LawyerProfileView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return views, nil
}

func sortSpec(sort string) bson.D {
	switch sort {
	case "-name":
		return bson.D{{Key: "fullName", Value: -1}}
	case "rate":
		return bson.D{{Key: "hourlyRate", Value: 1}}
	case "-rate":
		return bson.D{{Key: "hourlyRate", Value: -1}}
	default:
		return bson.D{{Key: "fullName", Value: 1}}
	}
}
