package yaopets

import "context"

func (c *Client) ListFeed(ctx context.Context, limit int, cursor string) (Collection[Post], error) {
	body, err := c.get(ctx, "/posts", listQuery(limit, cursor))
	if err != nil {
		return Collection[Post]{}, err
	}
	return decodeCollection[Post](body, "posts")
}

func (c *Client) ListUserPosts(ctx context.Context, userID string, limit int, cursor string) (Collection[Post], error) {
	body, err := c.get(ctx, "/users/"+userID+"/posts", listQuery(limit, cursor))
	if err != nil {
		return Collection[Post]{}, err
	}
	return decodeCollection[Post](body, "posts")
}

func (c *Client) ListSavedPosts(ctx context.Context, limit int) (Collection[Post], error) {
	body, err := c.get(ctx, "/users/me/saved", listQuery(limit, ""))
	if err != nil {
		return Collection[Post]{}, err
	}
	return decodeCollection[Post](body, "posts")
}

type CreatePostRequest struct {
	Content    string   `json:"content"`
	MediaURLs  []string `json:"mediaUrls"`
	MediaType  string   `json:"mediaType"`
	Visibility string   `json:"visibility"`
}

func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	body, err := c.post(ctx, "/posts", req)
	if err != nil {
		return nil, err
	}
	return decodeRecord[Post](body)
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	_, err := c.delete(ctx, "/posts/"+id)
	return err
}

func (c *Client) LikePost(ctx context.Context, id string) (*ToggleResult, error) {
	body, err := c.post(ctx, "/posts/"+id+"/like", nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[ToggleResult](body)
}

func (c *Client) UnlikePost(ctx context.Context, id string) (*ToggleResult, error) {
	body, err := c.delete(ctx, "/posts/"+id+"/like")
	if err != nil {
		return nil, err
	}
	return decodeRecord[ToggleResult](body)
}

func (c *Client) SavePost(ctx context.Context, id string) (*ToggleResult, error) {
	body, err := c.post(ctx, "/posts/"+id+"/save", nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[ToggleResult](body)
}

func (c *Client) UnsavePost(ctx context.Context, id string) (*ToggleResult, error) {
	body, err := c.delete(ctx, "/posts/"+id+"/save")
	if err != nil {
		return nil, err
	}
	return decodeRecord[ToggleResult](body)
}
