package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/vault/access"
)

func (a *App) getStatus() string {
	p := a.prefs.Get()
	return fmt.Sprintf("(%s %s)", p.UserName, a.session.Level())
}

// Root runs the command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Zarqon vault (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("zarqon %s> ", a.getStatus())
		if !scanner.Scan() {
			break
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
			a.help()

		case "finance":
			a.finance(ctx, args)
		case "social":
			a.social(ctx, args)
		case "accounts":
			a.accounts(ctx, args)
		case "sites":
			a.sites(ctx, args)
		case "certs":
			a.certs(ctx, args)
		case "courses":
			a.courses(ctx, args)
		case "books":
			a.books(ctx, args)

		case "summary":
			a.summary(ctx)
		case "watch":
			a.watch(ctx)
		case "prefs":
			a.prefsCmd(ctx, args)

		case "unlock":
			a.unlock(args)
		case "lock":
			a.session.Reset()
			fmt.Println("Session locked")

		case "export":
			a.export(ctx)
		case "import":
			a.importCmd(ctx, args)
		case "reset":
			a.reset(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	fmt.Println("Collections: finance, social, accounts, sites, certs, courses, books")
	fmt.Println("  <collection> list | add | delete <id>")
	fmt.Println("  accounts reveal <id> | pin <id>     (reveal needs an unlocked session)")
	fmt.Println("  courses progress <id> <pct>")
	fmt.Println("  books rate <id> <1-5>")
	fmt.Println("Other: summary, watch, prefs [set], unlock [dev], lock,")
	fmt.Println("       export, import <file>, reset, exit")
}

// requireVerified gates sensitive commands on the session level.
func (a *App) requireVerified() bool {
	if a.session.Allows(access.Verified) {
		return true
	}
	fmt.Println("This command needs an unlocked session; run 'unlock' first.")
	return false
}

func (a *App) unlock(args []string) {
	if len(args) > 0 && args[0] == "dev" {
		if a.session.UnlockInternal() {
			fmt.Println("Internal surfaces unlocked")
		} else {
			fmt.Println("Unlock the session first")
		}
		return
	}

	pw, err := GetPassword(os.Stdout, "Access passphrase")
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	ok := a.session.Unlock(string(pw))
	common.WipeByteArray(pw)
	if ok {
		fmt.Println("Session unlocked")
	} else {
		fmt.Println("Wrong passphrase")
	}
}
