package simpledataRepo

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

// SimpleDataRepository serves the static lookup data: legal categories,
// judicial regions and cities.
type SimpleDataRepository interface {
	GetCategories(ctx context.Context) ([]models.LegalCategory, error)
	GetRegions(ctx context.Context) ([]models.JudicialRegion, error)
	GetCities(ctx context.Context) ([]models.City, error)
	GetCity(ctx context.Context, id int) (*models.City, error)
	Seed(ctx context.Context) error
}

type MongoSimpleDataRepo struct {
	categories *mongo.Collection
	regions    *mongo.Collection
	cities     *mongo.Collection
}

func NewMongoSimpleDataRepo() SimpleDataRepository {
	db := database.MongoClient.Database("superlaw")
	return &MongoSimpleDataRepo{
		categories: db.Collection("legalCategories"),
		regions:    db.Collection("judicialRegions"),
		cities:     db.Collection("cities"),
	}
}

func (r *MongoSimpleDataRepo) GetCategories(ctx context.Context) ([]models.LegalCategory, error) {
	return listItems(ctx, r.categories)
}

func (r *MongoSimpleDataRepo) GetRegions(ctx context.Context) ([]models.JudicialRegion, error) {
	return listItems(ctx, r.regions)
}

func (r *MongoSimpleDataRepo) GetCities(ctx context.Context) ([]models.City, error) {
	return listItems(ctx, r.cities)
}

func (r *MongoSimpleDataRepo) GetCity(ctx context.Context, id int) (*models.City, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var city models.City
	if err := r.cities.FindOne(ctx, bson.M{"id": id}).Decode(&city); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch city %d: %w", id, err)
	}
	return &city, nil
}

func listItems(ctx context.Context, coll *mongo.Collection) ([]models.SimpleItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var items []models.SimpleItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return items, nil
}

// Seed inserts the lookup data on first boot; existing entries are upserted
// in place so re-running is harmless.
func (r *MongoSimpleDataRepo) Seed(ctx context.Context) error {
	seeds := []struct {
		coll  *mongo.Collection
		items []models.SimpleItem
	}{
		{r.categories, []models.SimpleItem{
			{ID: 1, Name: "Criminal law"},
			{ID: 2, Name: "Civil law"},
			{ID: 3, Name: "Family law"},
			{ID: 4, Name: "Labour law"},
			{ID: 5, Name: "Commercial law"},
			{ID: 6, Name: "Administrative law"},
			{ID: 7, Name: "Real estate"},
		}},
		{r.regions, []models.SimpleItem{
			{ID: 1, Name: "Sofia"},
			{ID: 2, Name: "Plovdiv"},
			{ID: 3, Name: "Varna"},
			{ID: 4, Name: "Burgas"},
			{ID: 5, Name: "Ruse"},
			{ID: 6, Name: "Stara Zagora"},
		}},
		{r.cities, []models.SimpleItem{
			{ID: 1, Name: "Sofia"},
			{ID: 2, Name: "Plovdiv"},
			{ID: 3, Name: "Varna"},
			{ID: 4, Name: "Burgas"},
			{ID: 5, Name: "Ruse"},
			{ID: 6, Name: "Stara Zagora"},
			{ID: 7, Name: "Pleven"},
		}},
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, seed := range seeds {
		models := make([]mongo.WriteModel, len(seed.items))
		for i, item := range seed.items {
			models[i] = mongo.NewUpdateOneModel().
				SetFilter(bson.M{"id": item.ID}).
				SetUpdate(bson.M{"$set": item}).
				SetUpsert(true)
		}
		if _, err := seed.coll.BulkWrite(ctx, models); err != nil {
			return fmt.Errorf("failed to seed %s: %w", seed.coll.Name(), err)
		}
	}
	return nil
}
