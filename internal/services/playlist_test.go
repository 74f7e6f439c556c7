package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

func playlistFixture(videos ...*models.Video) (*PlaylistService, *fakePlaylistStore, *models.Playlist) {
	playlist := &models.Playlist{
		ID:     primitive.NewObjectID(),
		Owner:  7,
		Name:   "watch later",
		Videos: []primitive.ObjectID{},
	}
	store := newFakePlaylistStore(playlist)
	svc := NewPlaylistService(store, newFakeVideoCatalog(videos...))
	return svc, store, playlist
}

func TestPlaylistAddVideoAppendsAtTail(t *testing.T) {
	ctx := context.Background()
	a := &models.Video{ID: primitive.NewObjectID(), Owner: 7}
	b := &models.Video{ID: primitive.NewObjectID(), Owner: 7}
	svc, store, playlist := playlistFixture(a, b)

	_, err := svc.AddVideo(ctx, playlist.ID.Hex(), a.ID.Hex(), 7)
	require.NoError(t, err)
	updated, err := svc.AddVideo(ctx, playlist.ID.Hex(), b.ID.Hex(), 7)
	require.NoError(t, err)

	assert.Equal(t, []primitive.ObjectID{a.ID, b.ID}, updated.Videos)
	assert.Equal(t, []primitive.ObjectID{a.ID, b.ID}, store.playlists[playlist.ID].Videos)
}

func TestPlaylistAddDuplicateRejected(t *testing.T) {
	ctx := context.Background()
	a := &models.Video{ID: primitive.NewObjectID(), Owner: 7}
	svc, store, playlist := playlistFixture(a)

	_, err := svc.AddVideo(ctx, playlist.ID.Hex(), a.ID.Hex(), 7)
	require.NoError(t, err)

	_, err = svc.AddVideo(ctx, playlist.ID.Hex(), a.ID.Hex(), 7)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidOperation, kind)
	// the sequence is unchanged
	assert.Len(t, store.playlists[playlist.ID].Videos, 1)
}

func TestPlaylistAddMissingVideo(t *testing.T) {
	svc, _, playlist := playlistFixture()

	_, err := svc.AddVideo(context.Background(), playlist.ID.Hex(), primitive.NewObjectID().Hex(), 7)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}

func TestPlaylistAddNonOwnerForbidden(t *testing.T) {
	a := &models.Video{ID: primitive.NewObjectID(), Owner: 7}
	svc, _, playlist := playlistFixture(a)

	_, err := svc.AddVideo(context.Background(), playlist.ID.Hex(), a.ID.Hex(), 99)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, kind)
}

func TestPlaylistAddMalformedIDs(t *testing.T) {
	svc, _, playlist := playlistFixture()

	_, err := svc.AddVideo(context.Background(), "nope", primitive.NewObjectID().Hex(), 7)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidReference, kind)

	_, err = svc.AddVideo(context.Background(), playlist.ID.Hex(), "nope", 7)
	kind, ok = ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidReference, kind)
}

func TestPlaylistRemovePreservesOrder(t *testing.T) {
	ctx := context.Background()
	a := &models.Video{ID: primitive.NewObjectID(), Owner: 7}
	b := &models.Video{ID: primitive.NewObjectID(), Owner: 7}
	c := &models.Video{ID: primitive.NewObjectID(), Owner: 7}
	svc, _, playlist := playlistFixture(a, b, c)
	for _, v := range []*models.Video{a, b, c} {
		_, err := svc.AddVideo(ctx, playlist.ID.Hex(), v.ID.Hex(), 7)
		require.NoError(t, err)
	}

	updated, err := svc.RemoveVideo(ctx, playlist.ID.Hex(), b.ID.Hex(), 7)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{a.ID, c.ID}, updated.Videos)
}

func TestPlaylistRemoveAbsentVideo(t *testing.T) {
	svc, _, playlist := playlistFixture()

	_, err := svc.RemoveVideo(context.Background(), playlist.ID.Hex(), primitive.NewObjectID().Hex(), 7)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}

func TestPlaylistGetMissing(t *testing.T) {
	svc, _, _ := playlistFixture()

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}

func TestPlaylistUpdateAndDeleteOwnerOnly(t *testing.T) {
	ctx := context.Background()
	svc, store, playlist := playlistFixture()

	_, err := svc.Update(ctx, playlist.ID.Hex(), 99, "renamed", "")
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, kind)

	updated, err := svc.Update(ctx, playlist.ID.Hex(), 7, "renamed", "")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "renamed", store.playlists[playlist.ID].Name)

	err = svc.Delete(ctx, playlist.ID.Hex(), 99)
	kind, ok = ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, KindForbidden, kind)

	require.NoError(t, svc.Delete(ctx, playlist.ID.Hex(), 7))
	assert.Empty(t, store.playlists)
}
