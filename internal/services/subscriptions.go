package services

import (
	"context"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

// SubscriptionEdges is the slice of the subscription relationship store the
// service consumes.
type SubscriptionEdges interface {
	Exists(ctx context.Context, channel, subscriber uint) (bool, error)
	Create(ctx context.Context, channel, subscriber uint) error
	Delete(ctx context.Context, channel, subscriber uint) error
	CountByChannel(ctx context.Context, channel uint) (int64, error)
	Subscribers(ctx context.Context, channel uint) ([]models.User, error)
	Channels(ctx context.Context, subscriber uint) ([]models.User, error)
}

// UserDirectory answers user existence for channel references.
type UserDirectory interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// SubscriptionService toggles subscriber->channel edges and lists both sides
// of the relationship.
type SubscriptionService struct {
	subs  SubscriptionEdges
	users UserDirectory
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(subs SubscriptionEdges, users UserDirectory) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users}
}

// channelEdges adapts the subscription store to the toggle engine.
type channelEdges struct {
	subs SubscriptionEdges
}

func (e channelEdges) Exists(ctx context.Context, channel uint, subject uint) (bool, error) {
	return e.subs.Exists(ctx, channel, subject)
}

func (e channelEdges) Create(ctx context.Context, channel uint, subject uint) error {
	return e.subs.Create(ctx, channel, subject)
}

func (e channelEdges) Delete(ctx context.Context, channel uint, subject uint) error {
	return e.subs.Delete(ctx, channel, subject)
}

func (e channelEdges) Count(ctx context.Context, channel uint) (int64, error) {
	return e.subs.CountByChannel(ctx, channel)
}

// Toggle flips the subscriber's subscription to the channel. Subscribing to
// your own channel is rejected before any store call and never creates an
// edge.
func (s *SubscriptionService) Toggle(ctx context.Context, channelID, subscriberID uint) (ToggleResult, error) {
	if channelID == subscriberID {
		return ToggleResult{}, invalidOp("you cannot subscribe to your own channel")
	}
	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return ToggleResult{}, err
	}
	if !exists {
		return ToggleResult{}, notFound("channel not found")
	}
	return toggleEdge[uint](ctx, channelEdges{subs: s.subs}, channelID, subscriberID)
}

// ChannelSubscribers lists the users subscribed to a channel.
func (s *SubscriptionService) ChannelSubscribers(ctx context.Context, channelID uint) ([]models.User, error) {
	exists, err := s.users.Exists(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("channel not found")
	}
	return s.subs.Subscribers(ctx, channelID)
}

// SubscribedChannels lists the channels a user subscribes to.
func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriberID uint) ([]models.User, error) {
	exists, err := s.users.Exists(ctx, subscriberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, notFound("user not found")
	}
	return s.subs.Channels(ctx, subscriberID)
}
