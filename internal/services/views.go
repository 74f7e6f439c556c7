package services

import (
	"context"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

// ViewService is the view counter: one atomic increment per non-owner fetch.
type ViewService struct {
	videos VideoCatalog
}

// NewViewService creates a new ViewService
func NewViewService(videos VideoCatalog) *ViewService {
	return &ViewService{videos: videos}
}

// Record counts one view of the video. Owners viewing their own video are
// exempt. Repeated fetches by the same viewer each count; views is a page-view
// counter, not a unique-viewer counter.
func (s *ViewService) Record(ctx context.Context, video *models.Video, viewerID uint) error {
	if viewerID == video.Owner {
		return nil
	}
	return s.videos.IncrementViews(ctx, video.ID)
}
