package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the loop needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context)
	Login(ctx context.Context)
	Logout(ctx context.Context)
	Swipe(ctx context.Context)
	Matches(ctx context.Context)
	Profile(ctx context.Context)
	EditProfile(ctx context.Context)
	Settings(ctx context.Context)
	WhoAmI(ctx context.Context)
}

// runLoop reads a line, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Command handlers print their own errors; the loop stays focused
// on I/O.
func runLoop(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sparkle %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: swipe, matches, profile, edit, settings, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)

		case "login":
			a.Login(ctx)

		case "logout":
			a.Logout(ctx)

		case "swipe":
			a.Swipe(ctx)

		case "m", "matches":
			a.Matches(ctx)

		case "profile":
			a.Profile(ctx)

		case "edit":
			a.EditProfile(ctx)

		case "settings":
			a.Settings(ctx)

		case "whoami":
			a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}

// Root prints the greeting and runs the command loop on stdin.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Sparkle (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runLoop(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	s := a.session.Snapshot()
	if s.User != nil {
		return fmt.Sprintf("(%s)", s.User.Username)
	}
	return "(signed out)"
}
