package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayan42/vidmesh/backend/internal/models"
)

func TestRecordViewOwnerExempt(t *testing.T) {
	ctx := context.Background()
	video := &models.Video{ID: primitive.NewObjectID(), Owner: 5}
	catalog := newFakeVideoCatalog(video)
	svc := NewViewService(catalog)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Record(ctx, video, 5))
	}
	assert.Equal(t, int64(0), catalog.videos[video.ID].Views)
}

func TestRecordViewCountsEveryNonOwnerFetch(t *testing.T) {
	ctx := context.Background()
	video := &models.Video{ID: primitive.NewObjectID(), Owner: 5}
	catalog := newFakeVideoCatalog(video)
	svc := NewViewService(catalog)

	// same viewer repeatedly: page-view semantics, each fetch counts
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Record(ctx, video, 9))
	}
	assert.Equal(t, int64(3), catalog.videos[video.ID].Views)
}
