package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"studhub/internal/client/models"
	"studhub/internal/client/session"
	"studhub/internal/logging"
)

// ---- fake services ----

type fakeAuth struct {
	loginErr    error
	registerErr error
	me          models.Me
	meErr       error
	identity    session.Identity
	present     bool
	pingErr     error

	loginUser      string
	loginPass      []byte
	registerCalled bool
	registerEmail  string
	registerUser   string
	logoutCalled   bool
}

func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) error {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	f.present = false
	return nil
}

func (f *fakeAuth) Register(_ context.Context, email, user string, _ []byte) error {
	f.registerCalled = true
	f.registerEmail, f.registerUser = email, user
	return f.registerErr
}

func (f *fakeAuth) Me(context.Context) (models.Me, error)     { return f.me, f.meErr }
func (f *fakeAuth) Authenticated(context.Context) bool        { return f.present }
func (f *fakeAuth) Identity(context.Context) session.Identity { return f.identity }
func (f *fakeAuth) Ping(context.Context) error                { return f.pingErr }
func (f *fakeAuth) Close() error                              { return nil }

type fakeContent struct {
	posts     []models.Post
	postsErr  error
	created   models.Post
	createErr error
	files     []models.FileRecord
	filesErr  error
	uploadErr error

	filesCalls  int
	uploadCalls int
	statusText  string
	statusErr   error
}

func (f *fakeContent) Posts(context.Context) ([]models.Post, error) {
	return f.posts, f.postsErr
}

func (f *fakeContent) CreatePost(_ context.Context, title, content string) (models.Post, error) {
	if f.createErr != nil {
		return models.Post{}, f.createErr
	}
	if f.created.Title == "" {
		return models.Post{Title: title, Content: content, IsPublic: true}, nil
	}
	return f.created, nil
}

func (f *fakeContent) Files(context.Context) ([]models.FileRecord, error) {
	f.filesCalls++
	return f.files, f.filesErr
}

func (f *fakeContent) Upload(_ context.Context, path string) error {
	f.uploadCalls++
	return f.uploadErr
}

func (f *fakeContent) CreateDiscussion(_ context.Context, title string) (models.Discussion, error) {
	return models.Discussion{ID: 1, Title: title}, nil
}

func (f *fakeContent) PostMessage(_ context.Context, discussionID int64, body string) (models.Message, error) {
	return models.Message{ID: 1, DiscussionID: discussionID, Body: body}, nil
}

func (f *fakeContent) SetStatus(_ context.Context, text string) (models.Status, error) {
	f.statusText = text
	return models.Status{ID: 1, Text: text}, f.statusErr
}

// fakeAdmin counts every network-bound call so tests can assert that
// view-local mutations stay local.
type fakeAdmin struct {
	users     []models.AdminUser
	usersErr  error
	assignErr error
	deleteErr error

	networkCalls int
	assignedID   int64
	assignedRole string
	deletedID    int64
}

func (f *fakeAdmin) Users(context.Context) ([]models.AdminUser, error) {
	f.networkCalls++
	return f.users, f.usersErr
}

func (f *fakeAdmin) AssignRole(_ context.Context, userID int64, role string) error {
	f.networkCalls++
	f.assignedID, f.assignedRole = userID, role
	return f.assignErr
}

func (f *fakeAdmin) DeleteUser(_ context.Context, userID int64) error {
	f.networkCalls++
	f.deletedID = userID
	return f.deleteErr
}

// ---- helpers ----

func newTestApp(auth *fakeAuth, content *fakeContent, admin *fakeAdmin) *App {
	return &App{
		log:     logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		auth:    auth,
		content: content,
		admin:   admin,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

// capturePrintln redirects user-facing output into a slice for assertions.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubInputs(t *testing.T, lines []string, pw []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		s := lines[i]
		i++
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), pw...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func containsLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}
