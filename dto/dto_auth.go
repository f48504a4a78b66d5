package dto

import "yaopets-backend/model"

type RegisterReq struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResp is returned by register, login and the OAuth callback: the
// authenticated user plus the bearer token the client persists.
type SessionResp struct {
	User        *model.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}
