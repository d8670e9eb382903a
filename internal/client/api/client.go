// Package api implements the HTTP client for the Hub Studenti REST service.
package api

import (
	"context"
	"io"

	"studhub/internal/client/models"
)

// Client is the surface of the remote API used by the application. The
// concrete implementation is HTTPClient; tests substitute fakes.
type Client interface {
	Close() error

	// Auth.
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, email, username, password string) error
	Me(ctx context.Context) (models.Me, error)
	Ping(ctx context.Context) error

	// Dashboard content.
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error)
	ListFiles(ctx context.Context) ([]models.FileRecord, error)
	UploadFile(ctx context.Context, filename string, data io.Reader) error
	CreateDiscussion(ctx context.Context, title string) (models.Discussion, error)
	PostMessage(ctx context.Context, discussionID int64, body string) (models.Message, error)
	SetStatus(ctx context.Context, text string) (models.Status, error)

	// Administration.
	ListUsers(ctx context.Context) ([]models.AdminUser, error)
	AssignRole(ctx context.Context, userID int64, role string) error
	DeleteUser(ctx context.Context, userID int64) error
}
