package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotiType string

const (
	NotiPostLiked    NotiType = "POST_LIKED"
	NotiCommentLiked NotiType = "COMMENT_LIKED"
	NotiCommented    NotiType = "COMMENTED"
	NotiFollowed     NotiType = "FOLLOWED"
)

type Notification struct {
	ID        bson.ObjectID  `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID  `json:"userId"    bson:"user_id"`  // recipient
	ActorID   bson.ObjectID  `json:"actorId"   bson:"actor_id"` // who triggered it
	Type      NotiType       `json:"type"      bson:"type"`
	PostID    *bson.ObjectID `json:"postId,omitempty"    bson:"post_id,omitempty"`
	CommentID *bson.ObjectID `json:"commentId,omitempty" bson:"comment_id,omitempty"`
	Read      bool           `json:"read"      bson:"read"`
	CreatedAt time.Time      `json:"createdAt" bson:"created_at"`
}
