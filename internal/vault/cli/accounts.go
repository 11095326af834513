package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
)

func (a *App) accounts(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		a.accountsList(ctx)
	case "add":
		a.accountsAdd(ctx)
	case "reveal":
		a.accountsReveal(ctx, args[1:])
	case "pin":
		a.toggleByID(args[1:], "accounts pin <id>", a.services.Accounts.TogglePin)
	case "delete":
		a.deleteByID(args[1:], "accounts delete <id>", a.services.Accounts.Delete)
	default:
		fmt.Println("Usage: accounts [list|add|reveal <id>|pin <id>|delete <id>]")
	}
}

func (a *App) accountsList(ctx context.Context) {
	list, err := a.services.Accounts.List(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	for _, acc := range list {
		pin := " "
		if acc.IsPinned {
			pin = "*"
		}
		note := ""
		if !a.services.Accounts.Readable(acc) {
			note = " (secret unreadable with current key)"
		}
		fmt.Printf("%4d %s %-20s %-16s %s%s\n", acc.ID, pin, acc.Name, acc.Username, acc.Category, note)
	}
}

func (a *App) accountsAdd(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	category, err := GetSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	secret, err := GetPassword(os.Stdout, "Secret")
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer common.WipeByteArray(secret)

	id, err := a.services.Accounts.Add(ctx, models.Account{
		Name: name, Username: username, Category: category,
	}, string(secret))
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Added account %d\n", id)
}

func (a *App) accountsReveal(ctx context.Context, args []string) {
	if !a.requireVerified() {
		return
	}
	if len(args) == 0 {
		fmt.Println("Usage: accounts reveal <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	secret, err := a.services.Accounts.Reveal(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println(secret)
}

// toggleByID parses a single id argument and runs toggle.
func (a *App) toggleByID(args []string, usage string, toggle func(context.Context, int64) error) {
	if len(args) == 0 {
		fmt.Println("Usage:", usage)
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := toggle(context.Background(), id); err != nil {
		fmt.Println(err.Error())
	}
}
