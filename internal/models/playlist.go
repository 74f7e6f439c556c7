package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist is an owner's ordered, duplicate-free collection of video
// references. Videos is mutated only by the owner through the membership
// operations; order is preserved on removal.
type Playlist struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Owner       uint                 `json:"owner" bson:"owner"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" bson:"updated_at"`
}

// Contains reports whether the playlist already references videoID.
func (p *Playlist) Contains(videoID primitive.ObjectID) bool {
	for _, v := range p.Videos {
		if v == videoID {
			return true
		}
	}
	return false
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"required,max=1000"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
}
