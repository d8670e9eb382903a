package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"studhub/internal/client/api"
	"studhub/internal/client/models"
)

// ContentService covers the dashboard's content: the public post feed, the
// user's file drive, and the discussion/status extras.
type ContentService interface {
	Posts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, title, content string) (models.Post, error)
	Files(ctx context.Context) ([]models.FileRecord, error)
	Upload(ctx context.Context, path string) error
	CreateDiscussion(ctx context.Context, title string) (models.Discussion, error)
	PostMessage(ctx context.Context, discussionID int64, body string) (models.Message, error)
	SetStatus(ctx context.Context, text string) (models.Status, error)
}

type contentService struct {
	client api.Client
}

func NewContentService(client api.Client) ContentService {
	return &contentService{client: client}
}

func (c *contentService) Posts(ctx context.Context) ([]models.Post, error) {
	return c.client.ListPosts(ctx)
}

// CreatePost publishes a post. Posts are always public; there is no UI
// control for the flag.
func (c *contentService) CreatePost(ctx context.Context, title, content string) (models.Post, error) {
	return c.client.CreatePost(ctx, models.PostDraft{Title: title, Content: content, IsPublic: true})
}

func (c *contentService) Files(ctx context.Context) ([]models.FileRecord, error) {
	return c.client.ListFiles(ctx)
}

// Upload streams one local file to the server's drive.
func (c *contentService) Upload(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return c.client.UploadFile(ctx, filepath.Base(path), f)
}

func (c *contentService) CreateDiscussion(ctx context.Context, title string) (models.Discussion, error) {
	return c.client.CreateDiscussion(ctx, title)
}

func (c *contentService) PostMessage(ctx context.Context, discussionID int64, body string) (models.Message, error) {
	return c.client.PostMessage(ctx, discussionID, body)
}

func (c *contentService) SetStatus(ctx context.Context, text string) (models.Status, error) {
	return c.client.SetStatus(ctx, text)
}
