package dto

import "yaopets-backend/model"

type CreateCommentReq struct {
	Content string `json:"content"`
}

type ListCommentsResp struct {
	Comments   []model.FeedComment `json:"comments"`
	Pagination Pagination          `json:"pagination"`
}
