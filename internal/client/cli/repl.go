package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the subset of App the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Admins(ctx context.Context) error
	AddAdmin(ctx context.Context) error
	RemoveAdmin(ctx context.Context, args []string) error
	Recent(ctx context.Context) error
	Use(ctx context.Context, args []string) error
	Forget(ctx context.Context, args []string) error
	Forgot(ctx context.Context) error
	Language(ctx context.Context, args []string) error
}

// printlnFn is a test seam for REPL output.
var printlnFn = func(a ...any) { fmt.Println(a...) }

func printHelp(loggedIn bool) {
	printlnFn("Commands:")
	printlnFn("  help                  show this help")
	if loggedIn {
		printlnFn("  whoami                show the current session")
		printlnFn("  admins                list admin accounts")
		printlnFn("  addadmin              register a new admin")
		printlnFn("  rmadmin <email>       remove an admin")
		printlnFn("  logout                end the session")
	} else {
		printlnFn("  login [email]         sign in to the admin area")
		printlnFn("  recent                list saved logins")
		printlnFn("  use <email>           prefill login with a saved login")
		printlnFn("  forget <email>        remove a saved login")
		printlnFn("  forgot                request a password reset")
	}
	printlnFn("  lang [code]           show or set the preferred language")
	printlnFn("  exit | quit           leave")
}

// runREPL reads commands line by line from in until EOF, "exit" or
// context cancellation. Command errors are reported by the handlers
// themselves and do not stop the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	printlnFn("Type 'help' for commands.")
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Printf("[%s] > ", statusFn())
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			printlnFn()
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		switch cmd {
		case "help":
			printHelp(a.isLoggedIn())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "lang":
			_ = a.Language(ctx, args)
			continue
		}

		if a.isLoggedIn() {
			switch cmd {
			case "whoami":
				_ = a.WhoAmI(ctx)
			case "admins":
				_ = a.Admins(ctx)
			case "addadmin":
				_ = a.AddAdmin(ctx)
			case "rmadmin":
				_ = a.RemoveAdmin(ctx, args)
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "login":
			_ = a.Login(ctx, args)
		case "recent":
			_ = a.Recent(ctx)
		case "use":
			_ = a.Use(ctx, args)
		case "forget":
			_ = a.Forget(ctx, args)
		case "forgot":
			_ = a.Forgot(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
