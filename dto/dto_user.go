package dto

import "yaopets-backend/model"

type UpdateProfileReq struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	City     *string `json:"city,omitempty"`
	UserType *string `json:"userType,omitempty"`
}

type ListUsersResp struct {
	Users      []model.UserSummary `json:"users"`
	Pagination Pagination          `json:"pagination"`
}

type ProfileImageReq struct {
	ContentType string `json:"contentType"`
}

// ProfileImageResp carries a presigned PUT URL; the client uploads the image
// there and the stored profile_image field points at PublicURL.
type ProfileImageResp struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	ExpiresIn int    `json:"expiresIn"`
}
