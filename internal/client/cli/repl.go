package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Feed(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Comment(ctx context.Context, id string) error
	Create(ctx context.Context) error
	Directory(ctx context.Context) error
	Notifications(ctx context.Context) error
	Profile(ctx context.Context) error
	Emergency(ctx context.Context) error
}

// runREPL reads a line from scanner, parses the first token as the
// command, and dispatches to a. Unknown commands are reported back. The
// loop exits on EOF or "exit"/"quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("community %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: feed, show <id>, comment <id>, post, directory, notifications, profile, emergency, logout, exit")
			} else {
				printlnFn("Available commands: login, register, feed, show <id>, directory, notifications, emergency, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "comment":
			if len(args) == 0 {
				printlnFn("Usage: comment <id>")
				continue
			}
			_ = a.Comment(ctx, args[0])

		case "post":
			_ = a.Create(ctx)

		case "directory":
			_ = a.Directory(ctx)

		case "notifications":
			_ = a.Notifications(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "emergency":
			_ = a.Emergency(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
