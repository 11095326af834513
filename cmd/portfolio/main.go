package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/pumpkin2800/zarqon/internal/buildinfo"
	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/portfolio"
	"github.com/pumpkin2800/zarqon/internal/vault/access"
	"github.com/pumpkin2800/zarqon/internal/vault/config"
	"github.com/pumpkin2800/zarqon/internal/vault/prefs"
	"github.com/pumpkin2800/zarqon/internal/vault/services"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
)

// The portfolio binary renders the dashboard once and exits. It talks to
// the vault through the summary snapshot only.
func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := storage.Open(ctx, cfg.DatabaseFile(), nil, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer store.Close()

	pm, err := prefs.Open(cfg.DataDir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	svc := services.New(store, pm, cfg.SecretPassphrase, logger)

	session := access.NewSession(cfg.AccessPassphrase)
	if pw := os.Getenv("ZARQON_UNLOCK"); pw != "" {
		session.Unlock(pw)
	} else if wantsUnlock(os.Args[1:]) {
		promptUnlock(session)
	}

	snap, err := svc.Summary.Snapshot(ctx)
	if err != nil {
		log.Fatalf("%v", err)
	}

	out, err := portfolio.Render(snap, session.Level())
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Print(out)

}

// wantsUnlock reports whether an "unlock" argument was given.
func wantsUnlock(args []string) bool {
	for _, a := range args {
		if a == "unlock" {
			return true
		}
	}
	return false
}

// promptUnlock reads the access passphrase without echo and tries to
// verify the session. A wrong passphrase just leaves it at baseline.
func promptUnlock(session *access.Session) {
	fmt.Print("Access passphrase: ")
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return
	}
	defer common.WipeByteArray(pw)
	if !session.Unlock(string(pw)) {
		fmt.Println("Verification failed; showing the public view.")
	}
}
