package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pumpkin2800/zarqon/internal/vault/backup"
)

func (a *App) export(ctx context.Context) {
	path, err := backup.ExportToFile(ctx, a.store, a.config.BackupDir())
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Exported to", path)
}

// importCmd replaces everything in the vault, so it always confirms first.
func (a *App) importCmd(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: import <file>")
		return
	}

	ok, err := Confirm(a.reader, "Importing replaces ALL current data. Continue?", os.Stdout)
	if err != nil || !ok {
		fmt.Println("Import cancelled")
		return
	}

	if err := backup.ImportFromFile(ctx, a.store, args[0]); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Import complete")
}

func (a *App) reset(ctx context.Context) {
	ok, err := Confirm(a.reader, "This wipes EVERY collection. Continue?", os.Stdout)
	if err != nil || !ok {
		fmt.Println("Reset cancelled")
		return
	}

	if err := backup.Reset(ctx, a.store); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Vault reset")
}
