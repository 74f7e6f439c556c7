package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayan42/vidmesh/backend/internal/models"
	"github.com/sayan42/vidmesh/backend/internal/repositories"
)

// LikeEdges is the slice of the like relationship store the like service
// consumes.
type LikeEdges interface {
	Exists(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) (bool, error)
	Create(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) error
	Delete(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) error
	CountByTarget(ctx context.Context, kind models.TargetKind, targetID string) (int64, error)
	LikedTargetIDs(ctx context.Context, kind models.TargetKind, likedBy uint) ([]string, error)
}

// VideoCatalog is the video-store surface shared by the like, history, view,
// and stats services.
type VideoCatalog interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	ByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Video, error)
	ByOwner(ctx context.Context, owner uint) ([]models.Video, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
}

// EntityChecker answers existence for numeric-id entities (comments, tweets).
type EntityChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// LikeService toggles like edges for videos, comments, and tweets. Target
// validation and the existence lookup happen before any store write.
type LikeService struct {
	likes    LikeEdges
	videos   VideoCatalog
	comments EntityChecker
	tweets   EntityChecker
}

// NewLikeService creates a new LikeService
func NewLikeService(likes LikeEdges, videos VideoCatalog, comments, tweets EntityChecker) *LikeService {
	return &LikeService{likes: likes, videos: videos, comments: comments, tweets: tweets}
}

// kindEdges adapts the like store to the toggle engine for one target kind.
type kindEdges struct {
	likes LikeEdges
	kind  models.TargetKind
}

func (e kindEdges) Exists(ctx context.Context, target string, subject uint) (bool, error) {
	return e.likes.Exists(ctx, e.kind, target, subject)
}

func (e kindEdges) Create(ctx context.Context, target string, subject uint) error {
	return e.likes.Create(ctx, e.kind, target, subject)
}

func (e kindEdges) Delete(ctx context.Context, target string, subject uint) error {
	return e.likes.Delete(ctx, e.kind, target, subject)
}

func (e kindEdges) Count(ctx context.Context, target string) (int64, error) {
	return e.likes.CountByTarget(ctx, e.kind, target)
}

// ToggleVideoLike flips the user's like on a video.
func (s *LikeService) ToggleVideoLike(ctx context.Context, videoID string, userID uint) (ToggleResult, error) {
	objID, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return ToggleResult{}, invalidRef("invalid video id")
	}
	exists, err := s.videos.Exists(ctx, objID)
	if err != nil {
		return ToggleResult{}, err
	}
	if !exists {
		return ToggleResult{}, notFound("video not found")
	}
	return toggleEdge[string](ctx, kindEdges{s.likes, models.TargetVideo}, objID.Hex(), userID)
}

// ToggleCommentLike flips the user's like on a comment.
func (s *LikeService) ToggleCommentLike(ctx context.Context, commentID string, userID uint) (ToggleResult, error) {
	return s.toggleNumeric(ctx, models.TargetComment, commentID, userID, s.comments, "comment")
}

// ToggleTweetLike flips the user's like on a tweet.
func (s *LikeService) ToggleTweetLike(ctx context.Context, tweetID string, userID uint) (ToggleResult, error) {
	return s.toggleNumeric(ctx, models.TargetTweet, tweetID, userID, s.tweets, "tweet")
}

func (s *LikeService) toggleNumeric(ctx context.Context, kind models.TargetKind, rawID string, userID uint, checker EntityChecker, label string) (ToggleResult, error) {
	id, err := repositories.ParseNumericID(rawID)
	if err != nil {
		return ToggleResult{}, invalidRef("invalid " + label + " id")
	}
	exists, err := checker.Exists(ctx, id)
	if err != nil {
		return ToggleResult{}, err
	}
	if !exists {
		return ToggleResult{}, notFound(label + " not found")
	}
	return toggleEdge[string](ctx, kindEdges{s.likes, kind}, rawID, userID)
}

// LikedVideos returns the videos the user has liked, newest like first.
// Edges whose video has since been deleted are skipped.
func (s *LikeService) LikedVideos(ctx context.Context, userID uint) ([]models.Video, error) {
	rawIDs, err := s.likes.LikedTargetIDs(ctx, models.TargetVideo, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if objID, err := primitive.ObjectIDFromHex(raw); err == nil {
			ids = append(ids, objID)
		}
	}
	videos, err := s.videos.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(videos, ids), nil
}

// orderByIDs reorders videos to match the id sequence; ids with no matching
// video are dropped.
func orderByIDs(videos []models.Video, ids []primitive.ObjectID) []models.Video {
	byID := make(map[primitive.ObjectID]models.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}
	out := make([]models.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}
	return out
}
