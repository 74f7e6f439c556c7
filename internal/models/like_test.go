package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLikeEdge(t *testing.T) {
	edge, err := NewLikeEdge(TargetVideo, "64a1f0c2e4b0a1b2c3d4e5f6", 7)
	require.NoError(t, err)
	assert.Equal(t, TargetVideo, edge.TargetKind)
	assert.Equal(t, uint(7), edge.LikedBy)
}

func TestNewLikeEdgeRejectsBadInput(t *testing.T) {
	_, err := NewLikeEdge("post", "1", 7)
	assert.Error(t, err)

	_, err = NewLikeEdge(TargetComment, "", 7)
	assert.Error(t, err)

	_, err = NewLikeEdge(TargetTweet, "1", 0)
	assert.Error(t, err)
}

func TestTargetKindValid(t *testing.T) {
	for _, k := range []TargetKind{TargetVideo, TargetComment, TargetTweet} {
		assert.True(t, k.Valid())
	}
	assert.False(t, TargetKind("post").Valid())
	assert.False(t, TargetKind("").Valid())
}
