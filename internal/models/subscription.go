package models

import "time"

// Subscription represents "user X subscribes to channel Y". A channel is just
// another user. Self-subscription is rejected before any write; the composite
// unique index keeps the pair unique under concurrent toggles.
type Subscription struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Subscriber uint      `json:"subscriber" gorm:"index;uniqueIndex:idx_subscriber_channel"`
	Channel    uint      `json:"channel" gorm:"index;uniqueIndex:idx_subscriber_channel"`
	CreatedAt  time.Time `json:"created_at"`
}
