package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"studhub/internal/client/models"
)

// Admin opens the user-management panel. Access requires a server-verified
// administrator role on the viewer's profile; a failed profile fetch denies
// access rather than admitting a placeholder identity.
func (a *App) Admin(ctx context.Context) error {
	me, err := a.auth.Me(ctx)
	if err != nil {
		a.log.Error(ctx, "role check failed", "err", err)
		printlnFn("Admin panel is unavailable")
		a.route = routeDashboard
		return nil
	}
	if !me.IsAdmin() {
		printlnFn("The admin panel requires the administrator role")
		a.route = routeDashboard
		return nil
	}
	a.me = me

	users, err := a.admin.Users(ctx)
	if err != nil {
		a.log.Error(ctx, "user listing failed", "err", err)
		printlnFn("Failed to load users")
		return nil
	}
	a.users = users
	a.renderUsers()
	return nil
}

func (a *App) renderUsers() {
	printlnFn(fmt.Sprintf("Hello, %s! %d user(s):", a.me.Username, len(a.users)))
	for _, u := range a.users {
		state := "inactive"
		if u.IsActive {
			state = "active"
		}
		printlnFn(fmt.Sprintf("   [%d] %s <%s> %s roles=%s created=%s",
			u.ID, u.Username, u.Email, state, strings.Join(u.Roles, ","), u.CreatedAt))
	}
}

// AssignRole posts the change to the server. The displayed row updates and a
// success message prints regardless of the response; failures go to the log
// only.
func (a *App) AssignRole(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: role <id> <role>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: role <id> <role>")
		return nil
	}
	role := args[1]

	if err := a.admin.AssignRole(ctx, id, role); err != nil {
		a.log.Error(ctx, "role assignment failed", "user", id, "role", role, "err", err)
	}

	for i := range a.users {
		if a.users[i].ID == id {
			a.users[i].Roles = []string{role}
		}
	}
	printlnFn(fmt.Sprintf("Role changed for user %d", id))
	return nil
}

// ToggleUser flips the displayed active flag. No endpoint is wired for this
// mutation; the change exists only in the current view.
func (a *App) ToggleUser(_ context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: toggle <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: toggle <id>")
		return nil
	}

	for i := range a.users {
		if a.users[i].ID != id {
			continue
		}
		a.users[i].IsActive = !a.users[i].IsActive
		if a.users[i].IsActive {
			printlnFn("User activated")
		} else {
			printlnFn("User deactivated")
		}
		return nil
	}

	printlnFn(fmt.Sprintf("No user with id %d", id))
	return nil
}

// RemoveUser deletes the account on the server and, on success, drops the
// row from the displayed list.
func (a *App) RemoveUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: rmuser <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage: rmuser <id>")
		return nil
	}

	if err := a.admin.DeleteUser(ctx, id); err != nil {
		a.log.Error(ctx, "user deletion failed", "user", id, "err", err)
		printlnFn("Failed to delete the user")
		return nil
	}

	users := make([]models.AdminUser, 0, len(a.users))
	for _, u := range a.users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	a.users = users
	printlnFn(fmt.Sprintf("User %d deleted", id))
	return nil
}
