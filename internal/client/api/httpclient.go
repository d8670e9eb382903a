package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"studhub/internal/client/models"
)

// HTTPClient talks to the Hub Studenti backend over REST. The base URL is
// fixed at construction. There is no retry and no client-level timeout;
// callers bound requests through the context.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient builds a client for the given base URL. tokens may be nil,
// in which case all requests go out unauthenticated.
func NewHTTPClient(baseURL string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc: &http.Client{
			Transport: &authTransport{tokens: tokens},
		},
	}
}

// do executes the request and decodes a JSON body into out when out is
// non-nil. Transport failures map to ErrUnavailable, 401 to ErrUnauthorized,
// 403 to ErrForbidden; any other non-2xx status becomes a status error.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// Login exchanges credentials for an access token. The backend expects the
// OAuth2 password form encoding, not JSON.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, username, password string) error {
	in := struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}{Email: email, Username: username, Password: password}
	return c.postJSON(ctx, "/auth/register", in, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (models.Me, error) {
	var me models.Me
	if err := c.getJSON(ctx, "/users/me", &me); err != nil {
		return models.Me{}, err
	}
	return me, nil
}

// Ping probes the backend health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/health", nil)
}

func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, "/posts", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	var created models.Post
	if err := c.postJSON(ctx, "/posts", draft, &created); err != nil {
		return models.Post{}, err
	}
	return created, nil
}

func (c *HTTPClient) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	var files []models.FileRecord
	if err := c.getJSON(ctx, "/files", &files); err != nil {
		return nil, err
	}
	return files, nil
}

// UploadFile sends one file as multipart form data under the field name "f",
// matching what the upload endpoint expects.
func (c *HTTPClient) UploadFile(ctx context.Context, filename string, data io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("f", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, data); err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files/upload", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, nil)
}

func (c *HTTPClient) CreateDiscussion(ctx context.Context, title string) (models.Discussion, error) {
	in := struct {
		Title string `json:"title"`
	}{Title: title}
	var d models.Discussion
	if err := c.postJSON(ctx, "/discussions", in, &d); err != nil {
		return models.Discussion{}, err
	}
	return d, nil
}

func (c *HTTPClient) PostMessage(ctx context.Context, discussionID int64, body string) (models.Message, error) {
	in := struct {
		DiscussionID int64  `json:"discussion_id"`
		Body         string `json:"body"`
	}{DiscussionID: discussionID, Body: body}
	var m models.Message
	if err := c.postJSON(ctx, "/messages", in, &m); err != nil {
		return models.Message{}, err
	}
	return m, nil
}

func (c *HTTPClient) SetStatus(ctx context.Context, text string) (models.Status, error) {
	in := struct {
		Text string `json:"text"`
	}{Text: text}
	var s models.Status
	if err := c.postJSON(ctx, "/status", in, &s); err != nil {
		return models.Status{}, err
	}
	return s, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := c.getJSON(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) AssignRole(ctx context.Context, userID int64, role string) error {
	path := fmt.Sprintf("/admin/users/%d/roles/%s", userID, url.PathEscape(role))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/admin/users/%d", userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}
