package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"superlaw/database"
	"superlaw/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConsultationRepository records booked consultations.
type ConsultationRepository interface {
	Insert(ctx context.Context, consultation *models.Consultation) error
	ListByProfile(ctx context.Context, profileID string) ([]models.Consultation, error)
	ListByUser(ctx context.Context, userID string) ([]models.Consultation, error)
}

type MongoConsultationRepo struct {
	coll *mongo.Collection
}

func NewMongoConsultationRepo() ConsultationRepository {
	coll := database.MongoClient.Database("superlaw").Collection("consultations")
	return &MongoConsultationRepo{coll: coll}
}

func (r *MongoConsultationRepo) Insert(ctx context.Context, consultation *models.Consultation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, consultation); err != nil {
		return fmt.Errorf("failed to insert consultation: %w", err)
	}
	return nil
}

func (r *MongoConsultationRepo) ListByProfile(ctx context.Context, profileID string) ([]models.Consultation, error) {
	return r.list(ctx, bson.M{"profileId": profileID})
}

func (r *MongoConsultationRepo) ListByUser(ctx context.Context, userID string) ([]models.Consultation, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *MongoConsultationRepo) list(ctx context.Context, filter bson.M) ([]models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "from", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Consultation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode consultations: %w", err)
	}
	return out, nil
}
