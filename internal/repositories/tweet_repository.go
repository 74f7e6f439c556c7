package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	Create(ctx context.Context, tweet *models.Tweet) error
	ByID(ctx context.Context, id uint) (*models.Tweet, error)
	ByUserID(ctx context.Context, userID uint) ([]models.Tweet, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, tweet *models.Tweet) error
	Delete(ctx context.Context, id uint) error
}

// PostgresTweetRepository implements TweetRepository for PostgreSQL
type PostgresTweetRepository struct {
	db *gorm.DB
}

// NewPostgresTweetRepository creates a new PostgresTweetRepository
func NewPostgresTweetRepository(db *gorm.DB) *PostgresTweetRepository {
	return &PostgresTweetRepository{db: db}
}

func (r *PostgresTweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(tweet).Error, "create tweet")
}

func (r *PostgresTweetRepository) ByID(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).First(&tweet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "find tweet")
	}
	return &tweet, nil
}

func (r *PostgresTweetRepository) ByUserID(ctx context.Context, userID uint) ([]models.Tweet, error) {
	var tweets []models.Tweet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&tweets).Error
	if err != nil {
		return nil, errors.Wrap(err, "list tweets")
	}
	return tweets, nil
}

func (r *PostgresTweetRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Tweet{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check tweet")
	}
	return count > 0, nil
}

func (r *PostgresTweetRepository) Update(ctx context.Context, tweet *models.Tweet) error {
	return errors.Wrap(r.db.WithContext(ctx).Save(tweet).Error, "update tweet")
}

func (r *PostgresTweetRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Tweet{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete tweet")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
