// Package cli implements the interactive shell of the studhub client: the
// route guard, the four pages (login, register, dashboard, admin), and the
// REPL that drives them.
package cli
