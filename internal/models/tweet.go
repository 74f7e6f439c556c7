package models

import "gorm.io/gorm"

// Tweet is a short text post on a channel, likeable like videos and comments.
type Tweet struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index"`
	Content string `json:"content" validate:"required,min=1,max=280"`
}

type CreateTweetRequest struct {
	Content string `json:"content" validate:"required,min=1,max=280"`
}

type UpdateTweetRequest struct {
	Content string `json:"content" validate:"required,min=1,max=280"`
}
