package services

import (
	"context"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

// LikeCounter is the stats aggregator's view of the like store.
type LikeCounter interface {
	CountByTargets(ctx context.Context, kind models.TargetKind, targetIDs []string) (int64, error)
}

// SubscriberCounter is the stats aggregator's view of the subscription store.
type SubscriberCounter interface {
	CountByChannel(ctx context.Context, channel uint) (int64, error)
}

// StatsService computes per-channel dashboard aggregates on demand. The four
// figures come from independent reads with no shared snapshot; the result is
// best-effort, consistent only with each read's own moment.
type StatsService struct {
	videos VideoCatalog
	subs   SubscriberCounter
	likes  LikeCounter
}

// NewStatsService creates a new StatsService
func NewStatsService(videos VideoCatalog, subs SubscriberCounter, likes LikeCounter) *StatsService {
	return &StatsService{videos: videos, subs: subs, likes: likes}
}

// ChannelStats aggregates total videos, views, subscribers, and likes for the
// channel owner.
func (s *StatsService) ChannelStats(ctx context.Context, ownerID uint) (models.ChannelStats, error) {
	videos, err := s.videos.ByOwner(ctx, ownerID)
	if err != nil {
		return models.ChannelStats{}, err
	}

	var totalViews int64
	videoIDs := make([]string, 0, len(videos))
	for _, v := range videos {
		totalViews += v.Views
		videoIDs = append(videoIDs, v.ID.Hex())
	}

	totalSubscribers, err := s.subs.CountByChannel(ctx, ownerID)
	if err != nil {
		return models.ChannelStats{}, err
	}
	totalLikes, err := s.likes.CountByTargets(ctx, models.TargetVideo, videoIDs)
	if err != nil {
		return models.ChannelStats{}, err
	}

	return models.ChannelStats{
		TotalVideos:      int64(len(videos)),
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}, nil
}
