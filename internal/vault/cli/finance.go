package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pumpkin2800/zarqon/internal/vault/models"
)

func (a *App) finance(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		a.financeList(ctx, args[1:])
	case "add":
		a.financeAdd(ctx)
	case "total":
		a.financeTotal(ctx)
	case "delete":
		a.deleteByID(args[1:], "finance delete <id>", a.services.Finance.Delete)
	default:
		fmt.Println("Usage: finance [list|add|total|delete <id>]")
	}
}

func (a *App) financeList(ctx context.Context, args []string) {
	var entries []models.FinanceEntry
	var err error
	if len(args) > 0 {
		entries, err = a.services.Finance.ListKind(ctx, models.EntryKind(args[0]))
	} else {
		entries, err = a.services.Finance.List(ctx)
	}
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	for _, e := range entries {
		sign := "+"
		if e.Kind == models.EntryExpense {
			sign = "-"
		}
		fmt.Printf("%4d  %s  %s%s %s  %s  %s\n",
			e.ID, e.Date.Format("2006-01-02"), sign, e.Amount.String(), a.config.Currency, e.Category, e.Note)
	}
}

func (a *App) financeAdd(ctx context.Context) {
	kind, err := GetSimpleText(a.reader, "Type (income/expense)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	amount, err := GetDecimal(a.reader, "Amount", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	category, err := GetSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	date, err := GetDate(a.reader, "Date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	note, err := GetSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	id, err := a.services.Finance.Add(ctx, models.FinanceEntry{
		Kind: models.EntryKind(kind), Amount: amount, Category: category, Date: date, Note: note,
	})
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Added entry %d\n", id)
}

func (a *App) financeTotal(ctx context.Context) {
	totals, err := a.services.Finance.Totals(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Income:   %s %s\n", totals.Income.String(), a.config.Currency)
	fmt.Printf("Expenses: %s %s\n", totals.Expenses.String(), a.config.Currency)
	fmt.Printf("Net:      %s %s\n", totals.Net.String(), a.config.Currency)

	byCat, err := a.services.Finance.ExpensesByCategory(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	for cat, sum := range byCat {
		fmt.Printf("  %-16s %s\n", cat, sum.String())
	}
}

// deleteByID parses a single id argument and runs del.
func (a *App) deleteByID(args []string, usage string, del func(context.Context, int64) error) {
	if len(args) == 0 {
		fmt.Println("Usage:", usage)
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := del(context.Background(), id); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Printf("Deleted %d\n", id)
}
