package repositories

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

// WatchHistoryRepository persists each user's bounded recency list of watched
// videos.
type WatchHistoryRepository interface {
	Push(ctx context.Context, userID uint, videoID primitive.ObjectID) error
	VideoIDs(ctx context.Context, userID uint) ([]primitive.ObjectID, error)
}

// MongoWatchHistoryRepository implements WatchHistoryRepository for MongoDB
type MongoWatchHistoryRepository struct {
	collection *mongo.Collection
}

// NewMongoWatchHistoryRepository creates a new MongoWatchHistoryRepository
func NewMongoWatchHistoryRepository(db *mongo.Database) *MongoWatchHistoryRepository {
	return &MongoWatchHistoryRepository{collection: db.Collection("watch_histories")}
}

// Push records a view as one aggregation-pipeline update evaluated against the
// then-current document: prepend the video, filter out its prior occurrence,
// truncate to the cap. Two concurrent views by the same user therefore never
// lose an entry to a read-then-write race. Upsert covers the first view; the
// $ifNull keeps $filter happy when the document is being created.
// The transform matches models.PushRecent.
func (r *MongoWatchHistoryRepository) Push(ctx context.Context, userID uint, videoID primitive.ObjectID) error {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "videos", Value: bson.D{
				{Key: "$slice", Value: bson.A{
					bson.D{{Key: "$concatArrays", Value: bson.A{
						bson.A{videoID},
						bson.D{{Key: "$filter", Value: bson.D{
							{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$videos", bson.A{}}}}},
							{Key: "as", Value: "vid"},
							{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$vid", videoID}}}},
						}}},
					}}},
					models.WatchHistoryLimit,
				}},
			}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": int64(userID)}, update, options.Update().SetUpsert(true))
	return errors.Wrap(err, "push watch history")
}

// VideoIDs returns the user's history, most-recent-first. A user with no
// history document simply has an empty list.
func (r *MongoWatchHistoryRepository) VideoIDs(ctx context.Context, userID uint) ([]primitive.ObjectID, error) {
	var history models.WatchHistory
	err := r.collection.FindOne(ctx, bson.M{"_id": int64(userID)}).Decode(&history)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find watch history")
	}
	return history.Videos, nil
}
