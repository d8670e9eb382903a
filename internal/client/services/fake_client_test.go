package services

import (
	"context"
	"io"

	"studhub/internal/client/models"
)

// fakeClient implements api.Client for service unit tests, recording the
// arguments of each call.
type fakeClient struct {
	LoginRet string
	LoginErr error

	RegisterErr error
	MeRet       models.Me
	MeErr       error
	PingErr     error

	PostsRet   []models.Post
	PostsErr   error
	CreateRet  models.Post
	CreateErr  error
	FilesRet   []models.FileRecord
	FilesErr   error
	UploadErr  error
	UsersRet   []models.AdminUser
	UsersErr   error
	AssignErr  error
	DeleteErr  error
	StatusRet  models.Status
	StatusErr  error
	DiscussRet models.Discussion
	DiscussErr error
	MessageRet models.Message
	MessageErr error

	LastLoginUser     string
	LastLoginPassword string
	LastRegisterEmail string
	LastRegisterUser  string
	LastCreateDraft   models.PostDraft
	LastUploadName    string
	LastUploadBody    []byte
	LastAssignUserID  int64
	LastAssignRole    string
	LastDeleteUserID  int64
	LastStatusText    string

	FilesCalls int
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(_ context.Context, username, password string) (string, error) {
	f.LastLoginUser, f.LastLoginPassword = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, email, username, _ string) error {
	f.LastRegisterEmail, f.LastRegisterUser = email, username
	return f.RegisterErr
}

func (f *fakeClient) Me(context.Context) (models.Me, error) { return f.MeRet, f.MeErr }
func (f *fakeClient) Ping(context.Context) error            { return f.PingErr }

func (f *fakeClient) ListPosts(context.Context) ([]models.Post, error) {
	return f.PostsRet, f.PostsErr
}

func (f *fakeClient) CreatePost(_ context.Context, draft models.PostDraft) (models.Post, error) {
	f.LastCreateDraft = draft
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) ListFiles(context.Context) ([]models.FileRecord, error) {
	f.FilesCalls++
	return f.FilesRet, f.FilesErr
}

func (f *fakeClient) UploadFile(_ context.Context, filename string, data io.Reader) error {
	f.LastUploadName = filename
	f.LastUploadBody, _ = io.ReadAll(data)
	return f.UploadErr
}

func (f *fakeClient) CreateDiscussion(_ context.Context, title string) (models.Discussion, error) {
	return f.DiscussRet, f.DiscussErr
}

func (f *fakeClient) PostMessage(_ context.Context, discussionID int64, body string) (models.Message, error) {
	return f.MessageRet, f.MessageErr
}

func (f *fakeClient) SetStatus(_ context.Context, text string) (models.Status, error) {
	f.LastStatusText = text
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) ListUsers(context.Context) ([]models.AdminUser, error) {
	return f.UsersRet, f.UsersErr
}

func (f *fakeClient) AssignRole(_ context.Context, userID int64, role string) error {
	f.LastAssignUserID, f.LastAssignRole = userID, role
	return f.AssignErr
}

func (f *fakeClient) DeleteUser(_ context.Context, userID int64) error {
	f.LastDeleteUserID = userID
	return f.DeleteErr
}
