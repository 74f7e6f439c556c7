package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeSubscriptionStore()
	svc := NewSubscriptionService(store, fakeChecker{1: true, 2: true})

	on, err := svc.Toggle(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, on.Active)
	assert.Equal(t, int64(1), on.TotalCount)

	off, err := svc.Toggle(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, off.Active)
	assert.Equal(t, int64(0), off.TotalCount)
}

func TestSubscriptionToggleSelfRejected(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := NewSubscriptionService(store, fakeChecker{1: true})

	_, err := svc.Toggle(context.Background(), 1, 1)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidOperation, kind)
	// rejected before any store call
	assert.Zero(t, store.writes)
}

func TestSubscriptionToggleMissingChannel(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := NewSubscriptionService(store, fakeChecker{2: true})

	_, err := svc.Toggle(context.Background(), 1, 2)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Zero(t, store.writes)
}

func TestChannelSubscribersMissingChannel(t *testing.T) {
	svc := NewSubscriptionService(newFakeSubscriptionStore(), fakeChecker{})

	_, err := svc.ChannelSubscribers(context.Background(), 42)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}

func TestSubscribedChannelsMissingUser(t *testing.T) {
	svc := NewSubscriptionService(newFakeSubscriptionStore(), fakeChecker{})

	_, err := svc.SubscribedChannels(context.Background(), 42)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}
