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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	List(ctx context.Context, category string) error
	Add(ctx context.Context) error
	Done(ctx context.Context, ref string) error
	Remove(ctx context.Context, ref string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Taskify CLI.
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
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - list [category]  — list tasks, optionally filtered by category
//	  - add              — add a task (interactive prompts)
//	  - done <n|id>      — mark a task as completed
//	  - rm <n|id>        — delete a task
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// done and rm accept either a position from the last list output or a task id.
// Any errors returned by command handlers are printed here so the loop keeps
// running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("taskify> %s > ", statusFn()))
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

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [category], add, done <n|id>, rm <n|id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "l", "list":
			category := ""
			if len(args) > 0 {
				category = args[0]
			}
			err = a.List(ctx, category)

		case "add":
			err = a.Add(ctx)

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <n|id>")
				continue
			}
			err = a.Done(ctx, args[0])

		case "rm":
			if len(args) == 0 {
				printlnFn("Usage: rm <n|id>")
				continue
			}
			err = a.Remove(ctx, args[0])

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
