package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Users(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Edit(ctx context.Context, id string) error
	Set(ctx context.Context, field, value string) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context, what string) error
	Delete(ctx context.Context, id string) error
	Confirm(ctx context.Context) error
	Add(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF, on "exit"/"quit", or when ctx is done. Handler
// errors are not printed here; handlers report their own outcomes.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("uc (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		cmd, rest := splitCommand(line)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, (l)ist, search, edit, set, save, delete, confirm, cancel, add, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "l", "list", "users":
			_ = a.Users(ctx)

		case "search":
			_ = a.Search(ctx, rest)

		case "edit":
			if rest == "" {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, rest)

		case "set":
			field, value := splitCommand(rest)
			if field == "" {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			_ = a.Set(ctx, field, value)

		case "save":
			_ = a.Save(ctx)

		case "cancel":
			_ = a.Cancel(ctx, rest)

		case "delete":
			if rest == "" {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, rest)

		case "confirm":
			_ = a.Confirm(ctx)

		case "add":
			_ = a.Add(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// splitCommand returns the first word of line and the trimmed remainder.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	return cmd, strings.TrimSpace(rest)
}
