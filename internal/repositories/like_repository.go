package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

// LikeRepository is the relationship store for like edges. One table holds all
// three target kinds; every operation is scoped by the (kind, target, subject)
// compound key, so each kind is its own uniqueness domain.
type LikeRepository interface {
	Exists(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) (bool, error)
	Create(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) error
	Delete(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) error
	CountByTarget(ctx context.Context, kind models.TargetKind, targetID string) (int64, error)
	CountByTargets(ctx context.Context, kind models.TargetKind, targetIDs []string) (int64, error)
	LikedTargetIDs(ctx context.Context, kind models.TargetKind, likedBy uint) ([]string, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

func (r *PostgresLikeRepository) Exists(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LikeEdge{}).
		Where("target_kind = ? AND target_id = ? AND liked_by = ?", kind, targetID, likedBy).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "check like edge")
	}
	return count > 0, nil
}

// Create inserts the edge. A uniqueness-constraint violation comes back as
// ErrDuplicateEdge so callers can treat the conflict as "already liked".
func (r *PostgresLikeRepository) Create(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) error {
	edge, err := models.NewLikeEdge(kind, targetID, likedBy)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEdge
		}
		return errors.Wrap(err, "create like edge")
	}
	return nil
}

// Delete removes the edge permanently. A missing edge reports ErrEdgeNotFound.
func (r *PostgresLikeRepository) Delete(ctx context.Context, kind models.TargetKind, targetID string, likedBy uint) error {
	res := r.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ? AND liked_by = ?", kind, targetID, likedBy).
		Delete(&models.LikeEdge{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete like edge")
	}
	if res.RowsAffected == 0 {
		return ErrEdgeNotFound
	}
	return nil
}

func (r *PostgresLikeRepository) CountByTarget(ctx context.Context, kind models.TargetKind, targetID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LikeEdge{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count like edges")
	}
	return count, nil
}

func (r *PostgresLikeRepository) CountByTargets(ctx context.Context, kind models.TargetKind, targetIDs []string) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LikeEdge{}).
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count like edges by targets")
	}
	return count, nil
}

// LikedTargetIDs returns the ids of kind-targets the user has liked, newest
// like first.
func (r *PostgresLikeRepository) LikedTargetIDs(ctx context.Context, kind models.TargetKind, likedBy uint) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.LikeEdge{}).
		Where("target_kind = ? AND liked_by = ?", kind, likedBy).
		Order("created_at DESC").
		Pluck("target_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "list liked targets")
	}
	return ids, nil
}
