package dto

import "yaopets-backend/model"

type CreatePostReq struct {
	Content    string   `json:"content"`
	MediaURLs  []string `json:"mediaUrls"`
	MediaType  string   `json:"mediaType"`
	Visibility string   `json:"visibility"`
}

type ListPostsResp struct {
	Posts      []model.FeedPost `json:"posts"`
	Pagination Pagination       `json:"pagination"`
}

// ToggleResp is the uniform body for like/save/follow state changes. Count
// is the authoritative server-side value after the write, letting clients
// reconcile an optimistic update.
type ToggleResp struct {
	Active bool   `json:"active"`
	Count  int64  `json:"count"`
	Status string `json:"status"` // "liked", "already-liked", "unliked", ...
}
