// Package models holds the DTOs exchanged with the Hub Studenti API.
package models

// Me is the profile of the currently authenticated user.
type Me struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// IsAdmin reports whether the user carries an administrator role. The backend
// is inconsistent about the role name ("admin" vs "administrator"); both are
// accepted.
func (m Me) IsAdmin() bool {
	for _, r := range m.Roles {
		if r == "admin" || r == "administrator" {
			return true
		}
	}
	return false
}

// Post is a published feed entry.
type Post struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
	AuthorID int64  `json:"author_id"`
}

// PostDraft is the request body for creating a post.
type PostDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

// FileRecord describes one uploaded file owned by the current user.
type FileRecord struct {
	ID         int64  `json:"id"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	ObjectName string `json:"object_name"`
}

// AdminUser is a row of the administrative user listing.
type AdminUser struct {
	ID        int64    `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	IsActive  bool     `json:"is_active"`
	CreatedAt string   `json:"created_at"`
	Roles     []string `json:"roles"`
}

// Discussion is a conversation thread.
type Discussion struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	CreatedBy int64  `json:"created_by"`
}

// Message is a single entry in a discussion.
type Message struct {
	ID           int64  `json:"id"`
	DiscussionID int64  `json:"discussion_id"`
	AuthorID     int64  `json:"author_id"`
	Body         string `json:"body"`
}

// Status is a short profile status line.
type Status struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}
