package yaopets

// Client-side view models. Identifiers are plain strings: the normalization
// layer folds the backend's `_id` into `id` before records reach these types.

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	UserType     string `json:"userType"`
	Bio          string `json:"bio,omitempty"`
	City         string `json:"city,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type Session struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

type Post struct {
	ID            string   `json:"id"`
	UserID        string   `json:"userId"`
	Author        *User    `json:"author,omitempty"`
	Content       string   `json:"content"`
	MediaURLs     []string `json:"mediaUrls"`
	MediaType     string   `json:"mediaType"`
	Visibility    string   `json:"visibility"`
	LikesCount    int      `json:"likesCount"`
	CommentsCount int      `json:"commentsCount"`
	IsLiked       bool     `json:"isLiked"`
	IsSaved       bool     `json:"isSaved"`
	CreatedAt     string   `json:"createdAt"`
}

type Comment struct {
	ID         string `json:"id"`
	PostID     string `json:"postId"`
	UserID     string `json:"userId"`
	Author     *User  `json:"author,omitempty"`
	Content    string `json:"content"`
	LikesCount int    `json:"likesCount"`
	IsLiked    bool   `json:"isLiked"`
	CreatedAt  string `json:"createdAt"`
}

type Pet struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	Location    *GeoPoint `json:"location,omitempty"`
	PhotoURLs   []string  `json:"photoUrls"`
	Contact     string    `json:"contact,omitempty"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DonationItem struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	City        string   `json:"city,omitempty"`
	PhotoURLs   []string `json:"photoUrls"`
}

type Notification struct {
	ID        string `json:"id"`
	ActorID   string `json:"actorId"`
	Type      string `json:"type"`
	PostID    string `json:"postId,omitempty"`
	CommentID string `json:"commentId,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// ToggleResult is what like/save/follow endpoints answer with. Count is the
// server's authoritative value, used to reconcile an optimistic update.
type ToggleResult struct {
	Active bool   `json:"active"`
	Count  int64  `json:"count"`
	Status string `json:"status"`
}

type PaymentIntent struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
}
