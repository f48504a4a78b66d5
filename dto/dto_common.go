package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

type Pagination struct {
	Total      int64   `json:"total"`
	NextCursor *string `json:"nextCursor,omitempty"`
}
