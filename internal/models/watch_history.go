package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchHistoryLimit caps each user's history list. Oldest entries fall off
// the tail once the cap is reached.
const WatchHistoryLimit = 50

// WatchHistory is a per-user bounded recency list of watched videos,
// most-recent-first with no duplicates. The document id is the owning user's
// id; the list is written only through the tracker's single atomic transform.
type WatchHistory struct {
	UserID    int64                `json:"user_id" bson:"_id"`
	Videos    []primitive.ObjectID `json:"videos" bson:"videos"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at"`
}

// PushRecent returns the history list after recording a view of videoID:
// videoID moves to the front, any prior occurrence is dropped, and the result
// is truncated to limit entries. This is the canonical statement of the
// transform the Mongo pipeline update evaluates server-side.
func PushRecent(videos []primitive.ObjectID, videoID primitive.ObjectID, limit int) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(videos)+1)
	out = append(out, videoID)
	for _, v := range videos {
		if v != videoID {
			out = append(out, v)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
