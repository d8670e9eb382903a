package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"studhub/internal/client/models"
)

// Dashboard loads the landing page: profile, public feed, and the user's
// drive. The three fetches run independently and fill disjoint fields, so
// their completion order does not matter.
func (a *App) Dashboard(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		meErr    error
		postsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		a.me, meErr = a.auth.Me(ctx)
	}()
	go func() {
		defer wg.Done()
		a.posts, postsErr = a.content.Posts(ctx)
	}()
	go func() {
		defer wg.Done()
		files, err := a.content.Files(ctx)
		if err != nil {
			// The drive is optional; a failed listing never blocks the page.
			a.log.Warn(ctx, "file listing unavailable", "err", err)
			return
		}
		a.files = files
	}()
	wg.Wait()

	if meErr != nil {
		a.log.Error(ctx, "profile fetch failed", "err", meErr)
		printlnFn("Failed to load your profile")
	}
	if postsErr != nil {
		a.log.Error(ctx, "post feed fetch failed", "err", postsErr)
		printlnFn("Failed to load the feed")
	}

	a.renderDashboard()
	return nil
}

func (a *App) renderDashboard() {
	if a.me.Username != "" {
		printlnFn(fmt.Sprintf("Hello, %s (%s)", a.me.Username, strings.Join(a.me.Roles, ",")))
	}

	printlnFn(fmt.Sprintf("-- Drive: %d file(s)", len(a.files)))
	for _, f := range a.files {
		printlnFn(fmt.Sprintf("   %s (%d bytes)", f.Filename, f.Size))
	}

	printlnFn(fmt.Sprintf("-- Feed: %d post(s)", len(a.posts)))
	for _, p := range a.posts {
		printlnFn(fmt.Sprintf("   [%d] %s", p.ID, p.Title))
		printlnFn("       " + p.Content)
	}
}

// NewPost publishes a post and puts the server's returned record at the top
// of the displayed feed. The prior list is kept as-is below it.
func (a *App) NewPost(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.content.CreatePost(ctx, title, content)
	if err != nil {
		a.log.Error(ctx, "post creation failed", "err", err)
		printlnFn("Failed to publish the post")
		return nil
	}

	a.posts = append([]models.Post{created}, a.posts...)
	printlnFn("Published: " + created.Title)
	return nil
}

// Upload sends one local file to the drive, then replaces the displayed list
// with a fresh fetch. One upload, one re-fetch; no optimistic merge.
func (a *App) Upload(ctx context.Context, path string) error {
	if err := a.content.Upload(ctx, path); err != nil {
		a.log.Error(ctx, "upload failed", "path", path, "err", err)
		printlnFn("Upload failed")
		return nil
	}

	files, err := a.content.Files(ctx)
	if err != nil {
		a.log.Warn(ctx, "file listing unavailable", "err", err)
		printlnFn("Uploaded")
		return nil
	}
	a.files = files
	printlnFn(fmt.Sprintf("Uploaded, %d file(s) in your drive", len(a.files)))
	return nil
}

// SetStatus publishes a short profile status line.
func (a *App) SetStatus(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Status", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.content.SetStatus(ctx, text); err != nil {
		a.log.Error(ctx, "status update failed", "err", err)
		printlnFn("Failed to update your status")
		return nil
	}
	printlnFn("Status updated")
	return nil
}

// NewDiscussion opens a discussion thread.
func (a *App) NewDiscussion(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Discussion title", os.Stdout)
	if err != nil {
		return err
	}

	d, err := a.content.CreateDiscussion(ctx, title)
	if err != nil {
		a.log.Error(ctx, "discussion creation failed", "err", err)
		printlnFn("Failed to create the discussion")
		return nil
	}
	printlnFn(fmt.Sprintf("Discussion %d created", d.ID))
	return nil
}

// NewMessage posts a message into an existing discussion.
func (a *App) NewMessage(ctx context.Context) error {
	idText, err := getSimpleText(a.reader, "Discussion id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		printlnFn("Discussion id must be a number")
		return nil
	}

	body, err := GetMultiline(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.content.PostMessage(ctx, id, body); err != nil {
		a.log.Error(ctx, "message posting failed", "discussion", id, "err", err)
		printlnFn("Failed to post the message")
		return nil
	}
	printlnFn("Message posted")
	return nil
}
