package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

// HistoryStore persists the per-user bounded recency list. Push must be a
// single atomic transform over the stored list.
type HistoryStore interface {
	Push(ctx context.Context, userID uint, videoID primitive.ObjectID) error
	VideoIDs(ctx context.Context, userID uint) ([]primitive.ObjectID, error)
}

// HistoryService is the watch-history tracker.
type HistoryService struct {
	store  HistoryStore
	videos VideoCatalog
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(store HistoryStore, videos VideoCatalog) *HistoryService {
	return &HistoryService{store: store, videos: videos}
}

// RecordView records a qualifying view in the user's history. A zero user id
// means no authenticated viewer; recording is refused rather than silently
// attributed to nobody, so callers must gate on authentication.
func (s *HistoryService) RecordView(ctx context.Context, userID uint, videoID primitive.ObjectID) error {
	if userID == 0 {
		return invalidOp("watch history requires an authenticated viewer")
	}
	return s.store.Push(ctx, userID, videoID)
}

// Recent returns the user's watched videos, most-recent-first. Entries whose
// video has since been deleted are dropped.
func (s *HistoryService) Recent(ctx context.Context, userID uint) ([]models.Video, error) {
	ids, err := s.store.VideoIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	videos, err := s.videos.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(videos, ids), nil
}
