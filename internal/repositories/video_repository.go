package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

// VideoRepository defines the interface for video data operations
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error)
	ByOwner(ctx context.Context, owner uint) ([]models.Video, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	Update(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
}

// MongoVideoRepository implements VideoRepository for MongoDB
type MongoVideoRepository struct {
	collection *mongo.Collection
}

// NewMongoVideoRepository creates a new MongoVideoRepository
func NewMongoVideoRepository(db *mongo.Database) *MongoVideoRepository {
	return &MongoVideoRepository{collection: db.Collection("videos")}
}

// Create inserts a new video document
func (r *MongoVideoRepository) Create(ctx context.Context, video *models.Video) error {
	video.ID = primitive.NewObjectID()
	video.CreatedAt = time.Now()
	video.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, video)
	return errors.Wrap(err, "insert video")
}

// ByID retrieves a video by its ObjectID
func (r *MongoVideoRepository) ByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	var video models.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find video")
	}
	return &video, nil
}

// ByIDs retrieves the videos matching ids; missing ids are silently dropped.
func (r *MongoVideoRepository) ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "find videos")
	}
	defer cursor.Close(ctx)

	var videos []models.Video
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, errors.Wrap(err, "decode videos")
	}
	return videos, nil
}

// ByOwner retrieves all videos owned by a user, newest first
func (r *MongoVideoRepository) ByOwner(ctx context.Context, owner uint) ([]models.Video, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "find videos by owner")
	}
	defer cursor.Close(ctx)

	var videos []models.Video
	if err = cursor.All(ctx, &videos); err != nil {
		return nil, errors.Wrap(err, "decode videos")
	}
	return videos, nil
}

func (r *MongoVideoRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "check video")
	}
	return count > 0, nil
}

// Update persists the video's mutable fields
func (r *MongoVideoRepository) Update(ctx context.Context, video *models.Video) error {
	video.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":        video.Title,
			"description":  video.Description,
			"thumbnail":    video.Thumbnail,
			"is_published": video.IsPublished,
			"updated_at":   video.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": video.ID}, update)
	if err != nil {
		return errors.Wrap(err, "update video")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a video document
func (r *MongoVideoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete video")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter by one as a single atomic update.
// Repeated views by the same viewer each count; there is no per-viewer dedup.
func (r *MongoVideoRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return errors.Wrap(err, "increment views")
}
