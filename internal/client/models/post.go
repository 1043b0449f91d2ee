package models

// PostType classifies a community post.
type PostType string

const (
	PostTypeGeneral PostType = "general"
	PostTypeAlert   PostType = "alert"
	PostTypeEvent   PostType = "event"
)

// Post is a feed entry. Identifiers are strings assigned client-side
// (see api.NextPostID); the store does not guarantee anything about them.
type Post struct {
	ID           string   `json:"id" validate:"required"`
	Author       string   `json:"author,omitempty"`
	AuthorAvatar string   `json:"authorAvatar,omitempty"`
	Content      string   `json:"content"`
	Image        string   `json:"image,omitempty"`
	Timestamp    string   `json:"timestamp"`
	Likes        int      `json:"likes"`
	Comments     int      `json:"comments"`
	Location     string   `json:"location"`
	Type         PostType `json:"type"`
}

// Comment belongs to a single post via PostID.
type Comment struct {
	ID           string `json:"id"`
	PostID       string `json:"postId"`
	Author       string `json:"author"`
	AuthorAvatar string `json:"authorAvatar,omitempty"`
	Content      string `json:"content"`
	Timestamp    string `json:"timestamp"`
}
