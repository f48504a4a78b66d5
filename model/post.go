package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaGif   MediaType = "gif"
	MediaVideo MediaType = "video"
)

func (m MediaType) Valid() bool {
	switch m {
	case MediaImage, MediaGif, MediaVideo:
		return true
	}
	return false
}

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityFollowers Visibility = "followers"
)

type Post struct {
	ID           bson.ObjectID `json:"id"           bson:"_id,omitempty"`
	UserID       bson.ObjectID `json:"userId"       bson:"user_id"`
	Content      string        `json:"content"      bson:"content"`
	MediaURLs    []string      `json:"mediaUrls"    bson:"media_urls"`
	Hashtags     []string      `json:"hashtags,omitempty" bson:"hashtags,omitempty"`
	MediaType    MediaType     `json:"mediaType"    bson:"media_type"`
	Visibility   Visibility    `json:"visibility"   bson:"visibility"`
	LikeCount    int           `json:"likesCount"   bson:"like_count"`
	CommentCount int           `json:"commentsCount" bson:"comment_count"`
	CreatedAt    time.Time     `json:"createdAt"    bson:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt"    bson:"updated_at"`
}

// FeedPost is a Post plus the viewer-relative flags. The flags are computed
// per request against the likes/saves collections and never stored on the
// post document itself.
type FeedPost struct {
	Post    `bson:",inline"`
	Author  *UserSummary `json:"author,omitempty" bson:"author,omitempty"`
	IsLiked bool         `json:"isLiked" bson:"is_liked"`
	IsSaved bool         `json:"isSaved" bson:"is_saved"`
}

// UserSummary is the author projection embedded in feed responses.
type UserSummary struct {
	ID           bson.ObjectID `json:"id"           bson:"_id"`
	Username     string        `json:"username"     bson:"username"`
	Name         string        `json:"name"         bson:"name"`
	ProfileImage string        `json:"profileImage,omitempty" bson:"profile_image,omitempty"`
	UserType     UserType      `json:"userType"     bson:"user_type"`
}
