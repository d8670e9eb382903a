package cli

import "context"

const (
	routeRoot      = "/"
	routeLogin     = "/login"
	routeRegister  = "/register"
	routeDashboard = "/dashboard"
	routeAdmin     = "/admin"
)

// resolve applies the route guard: public pages bounce an authenticated user
// to the dashboard, protected pages bounce an anonymous user to the login
// page, and the root always redirects on the current state. Unknown paths
// resolve to "".
func (a *App) resolve(path string) string {
	switch path {
	case routeRoot:
		if a.authenticated {
			return routeDashboard
		}
		return routeLogin
	case routeLogin, routeRegister:
		if a.authenticated {
			return routeDashboard
		}
		return path
	case routeDashboard, routeAdmin:
		if !a.authenticated {
			return routeLogin
		}
		return path
	default:
		return ""
	}
}

// Open navigates to path through the guard and renders the resulting page.
func (a *App) Open(ctx context.Context, path string) error {
	resolved := a.resolve(path)
	if resolved == "" {
		printlnFn("No such page:", path)
		return nil
	}
	if resolved != path && path != routeRoot {
		printlnFn("Redirecting to " + resolved)
	}
	a.route = resolved

	switch resolved {
	case routeLogin:
		return a.Login(ctx)
	case routeRegister:
		return a.Register(ctx)
	case routeDashboard:
		return a.Dashboard(ctx)
	case routeAdmin:
		return a.Admin(ctx)
	}
	return nil
}
