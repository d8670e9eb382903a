package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Open(ctx context.Context, path string) error
	Logout(ctx context.Context) error
	NewPost(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	SetStatus(ctx context.Context) error
	NewDiscussion(ctx context.Context) error
	NewMessage(ctx context.Context) error
	AssignRole(ctx context.Context, args []string) error
	ToggleUser(ctx context.Context, args []string) error
	RemoveUser(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the studhub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Signed out:
//	  - help             — show available commands
//	  - login            — open the sign-in page
//	  - register         — open the account-creation page
//	  - open <path>      — navigate to a page by path
//	  - exit | quit      — leave the program
//
//	Signed in:
//	  - help             — show available commands
//	  - dashboard        — open the dashboard
//	  - admin            — open the user-management panel
//	  - open <path>      — navigate to a page by path
//	  - post             — publish a post
//	  - upload <path>    — upload a file to the drive
//	  - status           — set a profile status line
//	  - discuss          — open a discussion thread
//	  - msg              — post a message into a discussion
//	  - role <id> <role> — assign a role to a user (admin)
//	  - toggle <id>      — flip a user's displayed active flag (admin)
//	  - rmuser <id>      — delete a user (admin)
//	  - logout           — drop the session
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers alert
// and log their own failures. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hub %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, admin, open <path>, post, upload <path>, status, discuss, msg, role <id> <role>, toggle <id>, rmuser <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, register, open <path>, exit")
			}

		case "login":
			_ = a.Open(ctx, routeLogin)

		case "register":
			_ = a.Open(ctx, routeRegister)

		case "dashboard", "d":
			_ = a.Open(ctx, routeDashboard)

		case "admin":
			_ = a.Open(ctx, routeAdmin)

		case "open":
			if len(args) != 1 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "post", "upload", "status", "discuss", "msg", "role", "toggle", "rmuser", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please sign in first")
				continue
			}
			switch cmd {
			case "post":
				_ = a.NewPost(ctx)
			case "upload":
				if len(args) != 1 {
					printlnFn("Usage: upload <path>")
					continue
				}
				_ = a.Upload(ctx, args[0])
			case "status":
				_ = a.SetStatus(ctx)
			case "discuss":
				_ = a.NewDiscussion(ctx)
			case "msg":
				_ = a.NewMessage(ctx)
			case "role":
				_ = a.AssignRole(ctx, args)
			case "toggle":
				_ = a.ToggleUser(ctx, args)
			case "rmuser":
				_ = a.RemoveUser(ctx, args)
			case "logout":
				_ = a.Logout(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
