package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPushRecentMovesRewatchToFront(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	var history []primitive.ObjectID
	for _, id := range []primitive.ObjectID{a, b, a, c} {
		history = PushRecent(history, id, 3)
	}

	assert.Equal(t, []primitive.ObjectID{c, a, b}, history)
}

func TestPushRecentEvictsOldestAtCap(t *testing.T) {
	ids := make([]primitive.ObjectID, 4)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}

	var history []primitive.ObjectID
	for _, id := range ids {
		history = PushRecent(history, id, 3)
	}

	// newest three survive, the first watch fell off the tail
	assert.Equal(t, []primitive.ObjectID{ids[3], ids[2], ids[1]}, history)
}

func TestPushRecentRewatchAtCapDoesNotEvict(t *testing.T) {
	ids := make([]primitive.ObjectID, 3)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}

	var history []primitive.ObjectID
	for _, id := range ids {
		history = PushRecent(history, id, 3)
	}
	history = PushRecent(history, ids[0], 3)

	assert.Equal(t, []primitive.ObjectID{ids[0], ids[2], ids[1]}, history)
}

func TestPushRecentOnEmpty(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, []primitive.ObjectID{id}, PushRecent(nil, id, WatchHistoryLimit))
}
