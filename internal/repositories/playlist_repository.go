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

// PlaylistRepository defines the interface for playlist data operations
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *models.Playlist) error
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error)
	ByOwner(ctx context.Context, owner uint) ([]models.Playlist, error)
	ReplaceVideos(ctx context.Context, id primitive.ObjectID, videos []primitive.ObjectID) error
	UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoPlaylistRepository implements PlaylistRepository for MongoDB
type MongoPlaylistRepository struct {
	collection *mongo.Collection
}

// NewMongoPlaylistRepository creates a new MongoPlaylistRepository
func NewMongoPlaylistRepository(db *mongo.Database) *MongoPlaylistRepository {
	return &MongoPlaylistRepository{collection: db.Collection("playlists")}
}

// Create inserts a new playlist with an empty video list
func (r *MongoPlaylistRepository) Create(ctx context.Context, playlist *models.Playlist) error {
	playlist.ID = primitive.NewObjectID()
	if playlist.Videos == nil {
		playlist.Videos = []primitive.ObjectID{}
	}
	playlist.CreatedAt = time.Now()
	playlist.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, playlist)
	return errors.Wrap(err, "insert playlist")
}

// ByID retrieves a playlist by its ObjectID
func (r *MongoPlaylistRepository) ByID(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error) {
	var playlist models.Playlist
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find playlist")
	}
	return &playlist, nil
}

// ByOwner retrieves all playlists owned by a user, newest first
func (r *MongoPlaylistRepository) ByOwner(ctx context.Context, owner uint) ([]models.Playlist, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "find playlists by owner")
	}
	defer cursor.Close(ctx)

	var playlists []models.Playlist
	if err = cursor.All(ctx, &playlists); err != nil {
		return nil, errors.Wrap(err, "decode playlists")
	}
	return playlists, nil
}

// ReplaceVideos persists the whole membership sequence in one write, keeping
// the mutation all-or-nothing from the caller's point of view.
func (r *MongoPlaylistRepository) ReplaceVideos(ctx context.Context, id primitive.ObjectID, videos []primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"videos": videos, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errors.Wrap(err, "replace playlist videos")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateDetails updates the playlist name and description
func (r *MongoPlaylistRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) error {
	update := bson.M{"$set": bson.M{"name": name, "description": description, "updated_at": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errors.Wrap(err, "update playlist")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a playlist document
func (r *MongoPlaylistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete playlist")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
