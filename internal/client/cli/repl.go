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

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Recover(ctx context.Context) error
	Navigate(ctx context.Context, view string) error
	PlantTree(ctx context.Context) error
	Report(ctx context.Context) error
	StartChallenge(ctx context.Context) error
	JoinEvent(ctx context.Context, ref string) error
	SpeciesDetails(ctx context.Context, species string) error
	FilterMap(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop.
//
// The first token of a line is the command, the rest its argument. Unknown
// commands are reported back to the user. The loop exits on EOF or when the
// user types "exit" or "quit".
//
//	Not logged in:
//	  - help            show available commands
//	  - signup          create an account (logs in)
//	  - login           authenticate
//	  - recover         simulated password reset
//	  - go <view>       login or signup
//	  - exit | quit     leave the program
//
//	Logged in:
//	  - go <view>       dashboard, map, events, guide, profile
//	  - plant           log a tree planting
//	  - report          report an environmental issue
//	  - challenge       start the weekly challenge
//	  - join <event>    join an event by number or title
//	  - species <name>  species details from the guide
//	  - filter          filter the map
//	  - logout          sign out
//	  - exit | quit     leave the program
//
// Errors returned by handlers are already shown to the user as
// notifications, so the loop ignores them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: go <dashboard|map|events|guide|profile>, plant, report, challenge, join <event>, species <name>, filter, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, recover, go <login|signup>, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "recover":
			_ = a.Recover(ctx)

		case "go":
			if arg == "" {
				printlnFn("Usage: go <view>")
				continue
			}
			_ = a.Navigate(ctx, arg)

		case "profile":
			_ = a.Navigate(ctx, "profile")

		case "plant":
			_ = a.PlantTree(ctx)

		case "report":
			_ = a.Report(ctx)

		case "challenge":
			_ = a.StartChallenge(ctx)

		case "join":
			if arg == "" {
				printlnFn("Usage: join <event>")
				continue
			}
			_ = a.JoinEvent(ctx, arg)

		case "species":
			_ = a.SpeciesDetails(ctx, arg)

		case "filter":
			_ = a.FilterMap(ctx)

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
