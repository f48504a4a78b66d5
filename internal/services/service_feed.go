package services

import (
	"context"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"yaopets-backend/internal/repository"
	"yaopets-backend/model"
)

// FeedService decorates bare post/comment pages with author summaries and
// the viewer-relative isLiked/isSaved flags. The flags come from the
// likes/saves collections on every request; they are never read from the
// documents themselves, so the server stays the single source of truth.
type FeedService struct {
	Users *repository.UserRepository
	Likes *repository.LikeRepository
	Saves *repository.SaveRepository
}

func NewFeedService(users *repository.UserRepository, likes *repository.LikeRepository, saves *repository.SaveRepository) *FeedService {
	return &FeedService{Users: users, Likes: likes, Saves: saves}
}

func (s *FeedService) DecoratePosts(ctx context.Context, viewer bson.ObjectID, posts []model.Post) ([]model.FeedPost, error) {
	postIDs := lo.Map(posts, func(p model.Post, _ int) bson.ObjectID { return p.ID })
	authorIDs := lo.Uniq(lo.Map(posts, func(p model.Post, _ int) bson.ObjectID { return p.UserID }))

	authors, err := s.Users.FindSummaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.Likes.LikedPostSet(ctx, viewer, postIDs)
	if err != nil {
		return nil, err
	}
	saved, err := s.Saves.SavedSet(ctx, viewer, postIDs)
	if err != nil {
		return nil, err
	}

	out := make([]model.FeedPost, 0, len(posts))
	for _, p := range posts {
		fp := model.FeedPost{
			Post:    p,
			IsLiked: liked[p.ID],
			IsSaved: saved[p.ID],
		}
		if a, ok := authors[p.UserID]; ok {
			fp.Author = &a
		}
		out = append(out, fp)
	}
	return out, nil
}

func (s *FeedService) DecorateComments(ctx context.Context, viewer bson.ObjectID, comments []model.Comment) ([]model.FeedComment, error) {
	ids := lo.Map(comments, func(c model.Comment, _ int) bson.ObjectID { return c.ID })
	authorIDs := lo.Uniq(lo.Map(comments, func(c model.Comment, _ int) bson.ObjectID { return c.UserID }))

	authors, err := s.Users.FindSummaries(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	liked, err := s.Likes.LikedCommentSet(ctx, viewer, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.FeedComment, 0, len(comments))
	for _, c := range comments {
		fc := model.FeedComment{
			Comment: c,
			IsLiked: liked[c.ID],
		}
		if a, ok := authors[c.UserID]; ok {
			fc.Author = &a
		}
		out = append(out, fc)
	}
	return out, nil
}
