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
	isLoggedIn(ctx context.Context) bool
	hasRoute(name string) bool
	Navigate(ctx context.Context, name string, args []string) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, exit"
	helpLoggedIn  = "Available commands: admin, user, users, projects, assigned, timesheets, mytimesheets, metrics, profile, logout, exit\n" +
		"Type a command followed by 'help' for its subcommands, e.g. 'projects help'."
)

// runREPL starts a simple read–eval–print loop for the timesheets CLI.
//
// It reads a line from reader, takes the first token as the command and the
// rest as its arguments. Route names are handed to Navigate, which applies
// the session gate. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			printlnFn("Bye!")
			return
		}
		printlnFn(fmt.Sprintf("ts %s> ", statusFn()))

		line, err := readLine(ctx, reader)
		if ctx.Err() != nil {
			printlnFn("Bye!")
			return
		}
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !a.hasRoute(cmd) {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Navigate(ctx, cmd, args)
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLine waits for the next line or for ctx to be done. On cancellation the
// pending read is abandoned; the reader must not be used concurrently until
// it returns.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case r := <-ch:
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
