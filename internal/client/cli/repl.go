package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	MyCard(ctx context.Context) error
	ShowCard(ctx context.Context, loginID string) error
	Scan(ctx context.Context, payload string) error
	RegisterCard(ctx context.Context) error
	SaveQR(ctx context.Context, path string) error
	DeleteCard(ctx context.Context) error

	Cards(ctx context.Context, groupID string) error
	Save(ctx context.Context, cardID, groupID string) error
	Exchange(ctx context.Context, cardID string) error
	Memo(ctx context.Context, id, text string) error
	Favorite(ctx context.Context, id string, on bool) error

	Groups(ctx context.Context) error
	GroupAdd(ctx context.Context, name string) error
	GroupRename(ctx context.Context, id, name string) error
	GroupDelete(ctx context.Context, id string) error

	Notifications(ctx context.Context) error
	Read(ctx context.Context, id string) error
	Push(ctx context.Context, token string) error
}

const (
	helpLoggedOut = "Available commands: signup, login, scan, exit"
	helpLoggedIn  = "Available commands: whoami, mycard, card, scan, register-card, qr-save, delete-card, " +
		"cards, save, exchange, memo, fav, groups, group-add, group-rename, group-del, " +
		"notifications, read, push, logout, exit"
)

// commands that need a session; the REPL answers them with a hint instead of
// a doomed request when nobody is logged in.
var needsLogin = map[string]bool{
	"whoami": true, "mycard": true, "card": true, "register-card": true, "qr-save": true, "delete-card": true,
	"cards": true, "save": true, "exchange": true, "memo": true, "fav": true,
	"groups": true, "group-add": true, "group-rename": true, "group-del": true,
	"notifications": true, "read": true, "push": true, "logout": true,
}

// runREPL starts a simple read–eval–print loop for the Scanly CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands and missing arguments are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                    — show available commands
//	  - signup                  — create an account
//	  - login                   — authenticate
//	  - scan <payload>          — open the card behind a scanned QR code
//	  - exit | quit             — leave the program
//
//	Logged in, additionally:
//	  - whoami                  — show the current session
//	  - mycard                  — show your own card
//	  - card <loginId>          — show a member's card
//	  - register-card           — create your card (interactive)
//	  - qr-save <file>          — download your card's QR image
//	  - delete-card             — delete your card
//	  - cards [groupId]         — list the card book
//	  - save <cardId> [groupId] — save a card to the card book
//	  - exchange <cardId>       — exchange cards with its owner
//	  - memo <id> <text>        — set the memo of a card book entry
//	  - fav <id> on|off         — mark or unmark a favourite
//	  - groups                  — list groups
//	  - group-add <name>        — create a group
//	  - group-rename <id> <name>
//	  - group-del <id>
//	  - notifications           — list notifications
//	  - read <id>               — mark a notification read
//	  - push <token>            — register a device push token
//	  - logout
//
// Errors returned by handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("scanly%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if needsLogin[cmd] && !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			if errors.Is(err, errQuit) {
				printlnFn("Bye!")
				return
			}
			printlnFn("Error:", describeError(err))
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil

	case "signup":
		return a.SignUp(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.WhoAmI(ctx)

	case "mycard":
		return a.MyCard(ctx)
	case "card":
		if len(args) < 1 {
			return usage("card <loginId>")
		}
		return a.ShowCard(ctx, args[0])
	case "scan":
		if len(args) < 1 {
			return usage("scan <payload>")
		}
		return a.Scan(ctx, strings.Join(args, " "))
	case "register-card":
		return a.RegisterCard(ctx)
	case "qr-save":
		if len(args) < 1 {
			return usage("qr-save <file>")
		}
		return a.SaveQR(ctx, args[0])
	case "delete-card":
		return a.DeleteCard(ctx)

	case "cards":
		return a.Cards(ctx, optional(args, 0))
	case "save":
		if len(args) < 1 {
			return usage("save <cardId> [groupId]")
		}
		return a.Save(ctx, args[0], optional(args, 1))
	case "exchange":
		if len(args) < 1 {
			return usage("exchange <cardId>")
		}
		return a.Exchange(ctx, args[0])
	case "memo":
		if len(args) < 2 {
			return usage("memo <id> <text>")
		}
		return a.Memo(ctx, args[0], strings.Join(args[1:], " "))
	case "fav":
		if len(args) < 2 || (args[1] != "on" && args[1] != "off") {
			return usage("fav <id> on|off")
		}
		return a.Favorite(ctx, args[0], args[1] == "on")

	case "groups":
		return a.Groups(ctx)
	case "group-add":
		if len(args) < 1 {
			return usage("group-add <name>")
		}
		return a.GroupAdd(ctx, strings.Join(args, " "))
	case "group-rename":
		if len(args) < 2 {
			return usage("group-rename <id> <name>")
		}
		return a.GroupRename(ctx, args[0], strings.Join(args[1:], " "))
	case "group-del":
		if len(args) < 1 {
			return usage("group-del <id>")
		}
		return a.GroupDelete(ctx, args[0])

	case "notifications":
		return a.Notifications(ctx)
	case "read":
		if len(args) < 1 {
			return usage("read <id>")
		}
		return a.Read(ctx, args[0])
	case "push":
		if len(args) < 1 {
			return usage("push <token>")
		}
		return a.Push(ctx, args[0])

	case "exit", "quit":
		return errQuit

	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
