package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayan42/vidmesh/backend/internal/models"
	"github.com/sayan42/vidmesh/backend/internal/repositories"
)

// PlaylistStore is the slice of the playlist repository the service consumes.
type PlaylistStore interface {
	Create(ctx context.Context, playlist *models.Playlist) error
	ByID(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error)
	ByOwner(ctx context.Context, owner uint) ([]models.Playlist, error)
	ReplaceVideos(ctx context.Context, id primitive.ObjectID, videos []primitive.ObjectID) error
	UpdateDetails(ctx context.Context, id primitive.ObjectID, name, description string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PlaylistService maintains each playlist's ordered, duplicate-free video
// sequence. Membership mutation is load-mutate-save at this layer; a lost
// update between two concurrent mutations of the same playlist is accepted
// because playlists are single-owner and rarely mutated concurrently.
type PlaylistService struct {
	playlists PlaylistStore
	videos    VideoCatalog
}

// NewPlaylistService creates a new PlaylistService
func NewPlaylistService(playlists PlaylistStore, videos VideoCatalog) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

// Create makes an empty playlist for the owner.
func (s *PlaylistService) Create(ctx context.Context, owner uint, name, description string) (*models.Playlist, error) {
	playlist := &models.Playlist{Owner: owner, Name: name, Description: description, Videos: []primitive.ObjectID{}}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Get returns a playlist by id.
func (s *PlaylistService) Get(ctx context.Context, playlistID string) (*models.Playlist, error) {
	id, err := primitive.ObjectIDFromHex(playlistID)
	if err != nil {
		return nil, invalidRef("invalid playlist id")
	}
	return s.load(ctx, id)
}

// ByOwner lists a user's playlists.
func (s *PlaylistService) ByOwner(ctx context.Context, owner uint) ([]models.Playlist, error) {
	return s.playlists.ByOwner(ctx, owner)
}

// AddVideo appends the video to the tail of the playlist's sequence. Fails
// before any write when the ids are malformed, the video does not exist, the
// requester is not the owner, or the video is already a member.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID string, requesterID uint) (*models.Playlist, error) {
	plID, vidID, err := parseMembershipIDs(playlistID, videoID)
	if err != nil {
		return nil, err
	}
	exists, err := s.videos.Exists(ctx, vidID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("video not found")
	}
	playlist, err := s.loadOwned(ctx, plID, requesterID)
	if err != nil {
		return nil, err
	}
	if playlist.Contains(vidID) {
		return nil, invalidOp("video already exists in the playlist")
	}
	playlist.Videos = append(playlist.Videos, vidID)
	if err := s.playlists.ReplaceVideos(ctx, plID, playlist.Videos); err != nil {
		return nil, err
	}
	return playlist, nil
}

// RemoveVideo filters the video out of the playlist, preserving the relative
// order of the remaining entries.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID string, requesterID uint) (*models.Playlist, error) {
	plID, vidID, err := parseMembershipIDs(playlistID, videoID)
	if err != nil {
		return nil, err
	}
	playlist, err := s.loadOwned(ctx, plID, requesterID)
	if err != nil {
		return nil, err
	}
	if !playlist.Contains(vidID) {
		return nil, notFound("video not found in the playlist")
	}
	kept := make([]primitive.ObjectID, 0, len(playlist.Videos)-1)
	for _, v := range playlist.Videos {
		if v != vidID {
			kept = append(kept, v)
		}
	}
	playlist.Videos = kept
	if err := s.playlists.ReplaceVideos(ctx, plID, playlist.Videos); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Update changes the playlist's name and/or description, owner only.
func (s *PlaylistService) Update(ctx context.Context, playlistID string, requesterID uint, name, description string) (*models.Playlist, error) {
	id, err := primitive.ObjectIDFromHex(playlistID)
	if err != nil {
		return nil, invalidRef("invalid playlist id")
	}
	playlist, err := s.loadOwned(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	if err := s.playlists.UpdateDetails(ctx, id, playlist.Name, playlist.Description); err != nil {
		return nil, err
	}
	return playlist, nil
}

// Delete removes the playlist, owner only.
func (s *PlaylistService) Delete(ctx context.Context, playlistID string, requesterID uint) error {
	id, err := primitive.ObjectIDFromHex(playlistID)
	if err != nil {
		return invalidRef("invalid playlist id")
	}
	if _, err := s.loadOwned(ctx, id, requesterID); err != nil {
		return err
	}
	return s.playlists.Delete(ctx, id)
}

func (s *PlaylistService) load(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error) {
	playlist, err := s.playlists.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("playlist not found")
		}
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) loadOwned(ctx context.Context, id primitive.ObjectID, requesterID uint) (*models.Playlist, error) {
	playlist, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if playlist.Owner != requesterID {
		return nil, forbidden("you are not authorized to modify this playlist")
	}
	return playlist, nil
}

func parseMembershipIDs(playlistID, videoID string) (primitive.ObjectID, primitive.ObjectID, error) {
	plID, err := primitive.ObjectIDFromHex(playlistID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, invalidRef("invalid playlist id")
	}
	vidID, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, invalidRef("invalid video id")
	}
	return plID, vidID, nil
}
