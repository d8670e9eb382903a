package cli

import (
	"context"
	"testing"
)

func TestResolve_GuardPolicy(t *testing.T) {
	tests := []struct {
		path   string
		authed bool
		want   string
	}{
		{"/", false, "/login"},
		{"/", true, "/dashboard"},
		{"/login", false, "/login"},
		{"/login", true, "/dashboard"},
		{"/register", false, "/register"},
		{"/register", true, "/dashboard"},
		{"/dashboard", false, "/login"},
		{"/dashboard", true, "/dashboard"},
		{"/admin", false, "/login"},
		{"/admin", true, "/admin"},
		{"/missing", false, ""},
		{"/missing", true, ""},
	}

	for _, tc := range tests {
		a := &App{authenticated: tc.authed}
		if got := a.resolve(tc.path); got != tc.want {
			t.Fatalf("resolve(%q) with authed=%v = %q, want %q", tc.path, tc.authed, got, tc.want)
		}
	}
}

func TestOpen_UnknownPath(t *testing.T) {
	lines := capturePrintln(t)
	a := newTestApp(&fakeAuth{}, &fakeContent{}, &fakeAdmin{})

	if err := a.Open(context.Background(), "/missing"); err != nil {
		t.Fatalf("Open err: %v", err)
	}
	if !containsLine(*lines, "No such page") {
		t.Fatalf("expected a no-such-page message, got %v", *lines)
	}
	if a.route != "" {
		t.Fatalf("route changed to %q on unknown path", a.route)
	}
}

func TestOpen_ProtectedPathRedirectsToLoginForm(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"alice"}, []byte("secret"))

	auth := &fakeAuth{}
	content := &fakeContent{}
	a := newTestApp(auth, content, &fakeAdmin{})

	// anonymous user asks for the dashboard; the guard lands them on /login,
	// which runs the sign-in form (stubbed above, succeeding)
	if err := a.Open(context.Background(), routeDashboard); err != nil {
		t.Fatalf("Open err: %v", err)
	}

	if !containsLine(*lines, "Redirecting to /login") {
		t.Fatalf("expected redirect notice, got %v", *lines)
	}
	if !a.authenticated {
		t.Fatalf("login form did not run")
	}
	if a.route != routeDashboard {
		t.Fatalf("route = %q, want %q after successful login", a.route, routeDashboard)
	}
}
