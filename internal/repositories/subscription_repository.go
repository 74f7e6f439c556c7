package repositories

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

// SubscriptionRepository is the relationship store for subscriber->channel
// edges, unique per (subscriber, channel) pair.
type SubscriptionRepository interface {
	Exists(ctx context.Context, channel, subscriber uint) (bool, error)
	Create(ctx context.Context, channel, subscriber uint) error
	Delete(ctx context.Context, channel, subscriber uint) error
	CountByChannel(ctx context.Context, channel uint) (int64, error)
	Subscribers(ctx context.Context, channel uint) ([]models.User, error)
	Channels(ctx context.Context, subscriber uint) ([]models.User, error)
}

// PostgresSubscriptionRepository implements SubscriptionRepository for PostgreSQL
type PostgresSubscriptionRepository struct {
	db *gorm.DB
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository
func NewPostgresSubscriptionRepository(db *gorm.DB) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{db: db}
}

func (r *PostgresSubscriptionRepository) Exists(ctx context.Context, channel, subscriber uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("channel = ? AND subscriber = ?", channel, subscriber).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "check subscription")
	}
	return count > 0, nil
}

// Create inserts the edge; a unique-index violation maps to ErrDuplicateEdge.
func (r *PostgresSubscriptionRepository) Create(ctx context.Context, channel, subscriber uint) error {
	sub := &models.Subscription{Subscriber: subscriber, Channel: channel}
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEdge
		}
		return errors.Wrap(err, "create subscription")
	}
	return nil
}

func (r *PostgresSubscriptionRepository) Delete(ctx context.Context, channel, subscriber uint) error {
	res := r.db.WithContext(ctx).
		Where("channel = ? AND subscriber = ?", channel, subscriber).
		Delete(&models.Subscription{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete subscription")
	}
	if res.RowsAffected == 0 {
		return ErrEdgeNotFound
	}
	return nil
}

func (r *PostgresSubscriptionRepository) CountByChannel(ctx context.Context, channel uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Subscription{}).
		Where("channel = ?", channel).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count subscribers")
	}
	return count, nil
}

// Subscribers returns the users subscribed to the channel.
func (r *PostgresSubscriptionRepository) Subscribers(ctx context.Context, channel uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Where("id IN (?)",
		r.db.Table("subscriptions").Select("subscriber").Where("channel = ?", channel),
	).Find(&users).Error
	if err != nil {
		return nil, errors.Wrap(err, "list subscribers")
	}
	return users, nil
}

// Channels returns the users (channels) the subscriber follows.
func (r *PostgresSubscriptionRepository) Channels(ctx context.Context, subscriber uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Where("id IN (?)",
		r.db.Table("subscriptions").Select("channel").Where("subscriber = ?", subscriber),
	).Find(&users).Error
	if err != nil {
		return nil, errors.Wrap(err, "list subscribed channels")
	}
	return users, nil
}
