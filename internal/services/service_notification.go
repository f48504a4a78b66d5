package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"yaopets-backend/internal/repository"
	"yaopets-backend/model"
)

// NotificationService fans out activity into the recipients' notification
// feeds. Failures are logged and swallowed: a missed notification must never
// fail the action that caused it.
type NotificationService struct {
	Repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

func (s *NotificationService) PostLiked(ctx context.Context, owner, actor, postID bson.ObjectID) {
	s.insert(ctx, owner, actor, model.Notification{Type: model.NotiPostLiked, PostID: &postID})
}

func (s *NotificationService) CommentLiked(ctx context.Context, owner, actor, commentID bson.ObjectID) {
	s.insert(ctx, owner, actor, model.Notification{Type: model.NotiCommentLiked, CommentID: &commentID})
}

func (s *NotificationService) Commented(ctx context.Context, owner, actor, postID bson.ObjectID) {
	s.insert(ctx, owner, actor, model.Notification{Type: model.NotiCommented, PostID: &postID})
}

func (s *NotificationService) Followed(ctx context.Context, owner, actor bson.ObjectID) {
	s.insert(ctx, owner, actor, model.Notification{Type: model.NotiFollowed})
}

func (s *NotificationService) insert(ctx context.Context, owner, actor bson.ObjectID, n model.Notification) {
	if owner == actor {
		return // no self-notifications
	}
	n.UserID = owner
	n.ActorID = actor
	if err := s.Repo.Insert(ctx, n); err != nil {
		log.Error().Err(err).Str("type", string(n.Type)).Msg("notification insert")
	}
}
