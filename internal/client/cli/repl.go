package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printfFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printfFn  = fmt.Printf
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Status(ctx context.Context) error
	Balance(ctx context.Context) error
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	History(ctx context.Context, args []string) error
	Clients(ctx context.Context) error
	Toggle(ctx context.Context, args []string) error
}

// runREPL is the navigation surface: it reads a line, parses the first token
// as the command, and dispatches to methods on 'a'. Unknown commands are
// reported back. The loop exits on EOF or "exit"/"quit".
//
// Every command re-derives its view from the latest session state; the
// access decisions themselves live in the guard package, consulted by the
// handlers before they touch the network.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printfFn("microbank %s> ", statusFn())
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
				printlnFn("Available commands: balance, deposit, withdraw, history [page [limit]], whoami, status, clients, toggle <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, register, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "status":
			_ = a.Status(ctx)

		case "balance":
			_ = a.Balance(ctx)

		case "deposit":
			_ = a.Deposit(ctx)

		case "withdraw":
			_ = a.Withdraw(ctx)

		case "history":
			_ = a.History(ctx, args)

		case "clients":
			_ = a.Clients(ctx)

		case "toggle":
			_ = a.Toggle(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
