package models

import (
	"fmt"
	"time"
)

// TargetKind discriminates which entity a LikeEdge points at. Exactly one
// target reference exists per edge; the kind plus the id is the whole variant.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// Valid reports whether k is one of the known target kinds.
func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}

// LikeEdge represents "user X likes item Y". All three kinds share one table;
// the composite unique index partitions uniqueness per kind, so a video like
// and a comment like with the same target id never collide.
type LikeEdge struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	TargetKind TargetKind `json:"target_kind" gorm:"index;uniqueIndex:idx_like_edge"`
	TargetID   string     `json:"target_id" gorm:"index;uniqueIndex:idx_like_edge"` // video ids are Mongo ObjectIDs as hex, comment/tweet ids are numeric
	LikedBy    uint       `json:"liked_by" gorm:"index;uniqueIndex:idx_like_edge"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewLikeEdge builds a LikeEdge, enforcing the tagged-variant invariant at
// construction time: a known kind and a populated target id.
func NewLikeEdge(kind TargetKind, targetID string, likedBy uint) (*LikeEdge, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown like target kind %q", kind)
	}
	if targetID == "" {
		return nil, fmt.Errorf("like target id must not be empty")
	}
	if likedBy == 0 {
		return nil, fmt.Errorf("like subject id must not be zero")
	}
	return &LikeEdge{TargetKind: kind, TargetID: targetID, LikedBy: likedBy}, nil
}
