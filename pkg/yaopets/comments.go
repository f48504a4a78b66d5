package yaopets

import "context"

func (c *Client) ListComments(ctx context.Context, postID string, limit int, cursor string) (Collection[Comment], error) {
	body, err := c.get(ctx, "/posts/"+postID+"/comments", listQuery(limit, cursor))
	if err != nil {
		return Collection[Comment]{}, err
	}
	return decodeCollection[Comment](body, "comments")
}

// AddComment waits for the server's created record: comment creation is not
// optimistic, the caller needs the real identifier before touching a list.
func (c *Client) AddComment(ctx context.Context, postID, content string) (*Comment, error) {
	body, err := c.post(ctx, "/posts/"+postID+"/comments", map[string]string{"content": content})
	if err != nil {
		return nil, err
	}
	return decodeRecord[Comment](body)
}

func (c *Client) LikeComment(ctx context.Context, id string) (*ToggleResult, error) {
	body, err := c.post(ctx, "/comments/"+id+"/like", nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[ToggleResult](body)
}

func (c *Client) UnlikeComment(ctx context.Context, id string) (*ToggleResult, error) {
	body, err := c.delete(ctx, "/comments/"+id+"/like")
	if err != nil {
		return nil, err
	}
	return decodeRecord[ToggleResult](body)
}
