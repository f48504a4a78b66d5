package yaopets

import (
	"context"
	"net/url"
	"strconv"
)

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	body, err := c.get(ctx, "/users/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[User](body)
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	City     *string `json:"city,omitempty"`
	UserType *string `json:"userType,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	body, err := c.patch(ctx, "/users/me", req)
	if err != nil {
		return nil, err
	}
	return decodeRecord[User](body)
}

type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	ExpiresIn int    `json:"expiresIn"`
}

// RequestProfileImageUpload asks for a presigned URL; the caller PUTs the
// image bytes there itself.
func (c *Client) RequestProfileImageUpload(ctx context.Context, contentType string) (*UploadTicket, error) {
	body, err := c.post(ctx, "/users/me/photo", map[string]string{"contentType": contentType})
	if err != nil {
		return nil, err
	}
	return decodeRecord[UploadTicket](body)
}

func (c *Client) ListFollowers(ctx context.Context, userID string) (Collection[User], error) {
	body, err := c.get(ctx, "/users/"+userID+"/followers", nil)
	if err != nil {
		return Collection[User]{}, err
	}
	return decodeCollection[User](body, "users")
}

func (c *Client) ListFollowing(ctx context.Context, userID string) (Collection[User], error) {
	body, err := c.get(ctx, "/users/"+userID+"/following", nil)
	if err != nil {
		return Collection[User]{}, err
	}
	return decodeCollection[User](body, "users")
}

func (c *Client) Follow(ctx context.Context, userID string) (*ToggleResult, error) {
	body, err := c.post(ctx, "/users/"+userID+"/follow", nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[ToggleResult](body)
}

func (c *Client) Unfollow(ctx context.Context, userID string) (*ToggleResult, error) {
	body, err := c.delete(ctx, "/users/"+userID+"/follow")
	if err != nil {
		return nil, err
	}
	return decodeRecord[ToggleResult](body)
}

func (c *Client) ListNotifications(ctx context.Context) (Collection[Notification], error) {
	body, err := c.get(ctx, "/notifications", nil)
	if err != nil {
		return Collection[Notification]{}, err
	}
	return decodeCollection[Notification](body, "notifications")
}

func (c *Client) MarkNotificationsRead(ctx context.Context) error {
	_, err := c.post(ctx, "/notifications/read", nil)
	return err
}

func listQuery(limit int, cursor string) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	return q
}
