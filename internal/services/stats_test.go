package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

func TestChannelStatsComposition(t *testing.T) {
	ctx := context.Background()
	v1 := &models.Video{ID: primitive.NewObjectID(), Owner: 7, Views: 10}
	v2 := &models.Video{ID: primitive.NewObjectID(), Owner: 7, Views: 5}
	other := &models.Video{ID: primitive.NewObjectID(), Owner: 8, Views: 100}
	catalog := newFakeVideoCatalog(v1, v2, other)

	likes := newFakeLikeStore()
	for _, sub := range []uint{1, 2, 3, 4} {
		require.NoError(t, likes.Create(ctx, models.TargetVideo, v1.ID.Hex(), sub))
	}
	// likes on another channel's video must not leak in
	require.NoError(t, likes.Create(ctx, models.TargetVideo, other.ID.Hex(), 1))

	subs := newFakeSubscriptionStore()
	require.NoError(t, subs.Create(ctx, 7, 1))
	require.NoError(t, subs.Create(ctx, 7, 2))

	svc := NewStatsService(catalog, subs, likes)
	stats, err := svc.ChannelStats(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, models.ChannelStats{
		TotalVideos:      2,
		TotalViews:       15,
		TotalSubscribers: 2,
		TotalLikes:       4,
	}, stats)
}

func TestChannelStatsEmptyChannel(t *testing.T) {
	svc := NewStatsService(newFakeVideoCatalog(), newFakeSubscriptionStore(), newFakeLikeStore())

	stats, err := svc.ChannelStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.ChannelStats{}, stats)
}
