package profileRepo

import (
	"context"
	"fmt"
	"time"

	"superlaw/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoProfileRepo) GetSchedule(ctx context.Context, profileID string) ([]models.ScheduleDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"schedule": 1})
	var result struct {
		Schedule []models.ScheduleDay `bson:"schedule"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"id": profileID}, opts).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to fetch schedule for profile %s: %w", profileID, err)
	}
	return result.Schedule, nil
}

// ReplaceScheduleDay is a last-writer-wins write per date: the stored day for
// the same date is pulled, then the new day is pushed unless it is empty.
// Callers serialize writes per profile, so the two ops need no transaction.
func (r *MongoProfileRepo) ReplaceScheduleDay(ctx context.Context, profileID string, day models.ScheduleDay) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": profileID}
	ops := []mongo.WriteModel{
		mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(bson.M{"$pull": bson.M{"schedule": bson.M{"date": day.Date}}}),
	}
	if !day.IsEmpty() {
		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(bson.M{"$push": bson.M{"schedule": day}}))
	}

	res, err := r.coll.BulkWrite(ctx, ops, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return fmt.Errorf("failed to replace schedule day %s for profile %s: %w", day.Date, profileID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// NextSlotIDs reserves a block of n sequential slot ids by incrementing the
// shared counter document.
func (r *MongoProfileRepo) NextSlotIDs(ctx context.Context, n int) ([]int64, error) {
	if n <= 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "timeSlotId"},
		bson.M{"$inc": bson.M{"seq": int64(n)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve %d slot ids: %w", n, err)
	}

	ids := make([]int64, n)
	for i := range ids {
		ids[i] = counter.Seq - int64(n) + int64(i) + 1
	}
	return ids, nil
}

// BookSlot performs the compare-and-set the booking engine relies on: the
// update only matches while the targeted slot still has hasMeeting=false, so
// a concurrent booking can never overwrite the first client's name.
func (r *MongoProfileRepo) BookSlot(ctx context.Context, profileID, date string, slotID int64, clientName string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":       profileID,
		"schedule": bson.M{"$elemMatch": bson.M{"date": date}},
	}
	update := bson.M{
		"$set": bson.M{
			"schedule.$[d].timeSlots.$[s].hasMeeting": true,
			"schedule.$[d].timeSlots.$[s].clientName": clientName,
		},
	}
	arrayFilters := options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.date": date},
			bson.M{"s.id": slotID, "s.hasMeeting": false},
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update,
		options.Update().SetArrayFilters(arrayFilters))
	if err != nil {
		return false, fmt.Errorf("failed to book slot %d for profile %s: %w", slotID, profileID, err)
	}
	return res.ModifiedCount > 0, nil
}
