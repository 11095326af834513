package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pumpkin2800/zarqon/internal/vault/live"
	"github.com/pumpkin2800/zarqon/internal/vault/services"
)

func (a *App) summary(ctx context.Context) {
	snap, err := a.services.Summary.Snapshot(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	printSnapshot(snap)
}

func printSnapshot(s services.Snapshot) {
	fmt.Printf("%s  net worth %s\n", s.UserName, s.NetWorth)
	fmt.Printf("  ledger:    +%s  -%s  = %s\n", s.Income.String(), s.Expenses.String(), s.Net.String())
	fmt.Printf("  followers: %d\n", s.Followers)
	fmt.Printf("  books:     %d read\n", s.BooksRead)
	fmt.Printf("  courses:   %d active, %d completed\n", s.CoursesActive, s.CoursesCompleted)
}

// watch keeps re-printing the summary whenever a write touches one of the
// collections behind it. Ctrl-C returns to the prompt.
func (a *App) watch(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sub := live.Subscribe(ctx, a.bus, a.log, func(ctx context.Context) (services.Snapshot, error) {
		return a.services.Summary.Snapshot(ctx)
	})
	defer sub.Unsubscribe()

	fmt.Println("Watching (Ctrl-C to stop)")
	for {
		select {
		case snap, ok := <-sub.Updates():
			if !ok {
				return
			}
			printSnapshot(snap)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) prefsCmd(ctx context.Context, args []string) {
	if len(args) > 0 && args[0] == "set" {
		a.prefsSet()
		return
	}

	p := a.prefs.Get()
	fmt.Printf("User:      %s\n", p.UserName)
	fmt.Printf("Currency:  %s\n", p.Currency)
	fmt.Printf("Net worth: %s\n", p.FormatNetWorth())
	fmt.Printf("Followers: %d\n", p.Followers)
	fmt.Printf("Books:     %d\n", p.BooksRead)
}

func (a *App) prefsSet() {
	p := a.prefs.Get()

	if v, err := GetSimpleText(a.reader, fmt.Sprintf("User name [%s]", p.UserName), os.Stdout); err == nil && v != "" {
		p.UserName = v
	}
	if v, err := GetSimpleText(a.reader, fmt.Sprintf("Currency [%s]", p.Currency), os.Stdout); err == nil && v != "" {
		p.Currency = v
	}
	if v, err := GetDecimal(a.reader, fmt.Sprintf("Net worth [%s]", p.NetWorth.String()), os.Stdout); err == nil {
		p.NetWorth = v
	}
	if v, err := GetInt(a.reader, fmt.Sprintf("Followers [%d]", p.Followers), p.Followers, os.Stdout); err == nil {
		p.Followers = v
	}
	if v, err := GetInt(a.reader, fmt.Sprintf("Books read [%d]", p.BooksRead), p.BooksRead, os.Stdout); err == nil {
		p.BooksRead = v
	}

	if err := a.prefs.Set(p); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Preferences saved")
}
