package services

import (
	"context"
	"fmt"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/cryptox"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
)

// AccountService manages stored credentials. Secrets are sealed before they
// reach the repository and only unsealed on explicit reveal.
type AccountService struct {
	repo *storage.AccountRepo
	key  string
	log  logging.Logger
}

// NewAccountService seals secrets with key; an empty key selects the
// built-in one.
func NewAccountService(repo *storage.AccountRepo, key string, log logging.Logger) *AccountService {
	if key == "" {
		key = cryptox.DefaultKey
	}
	return &AccountService{repo: repo, key: key, log: log}
}

// Add seals secret and stores the account.
func (s *AccountService) Add(ctx context.Context, a models.Account, secret string) (int64, error) {
	if err := checkValid(a); err != nil {
		return 0, err
	}
	sealed, err := cryptox.Seal(secret, s.key)
	if err != nil {
		return 0, err
	}
	a.EncryptedSecret = sealed
	return s.repo.Add(ctx, a)
}

// Reveal unseals the secret of one account.
func (s *AccountService) Reveal(ctx context.Context, id int64) (string, error) {
	a, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	return cryptox.Unseal(a.EncryptedSecret, s.key)
}

// Readable reports whether a stored secret still unseals with the current
// key. Accounts sealed under a different passphrase, for example restored
// from an old backup, fail this check.
func (s *AccountService) Readable(a models.Account) bool {
	if a.EncryptedSecret == "" {
		return true
	}
	return cryptox.UnsealLenient(a.EncryptedSecret, s.key) != ""
}

// List returns every account, pinned first, then by name.
func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	models.SortAccounts(accounts)
	return accounts, nil
}

// Update applies a patch; a non-nil secret is sealed first.
func (s *AccountService) Update(ctx context.Context, id int64, p models.AccountPatch, secret *string) error {
	if secret != nil {
		sealed, err := cryptox.Seal(*secret, s.key)
		if err != nil {
			return err
		}
		p.EncryptedSecret = &sealed
	}
	return s.repo.Update(ctx, id, p)
}

func (s *AccountService) TogglePin(ctx context.Context, id int64) error {
	a, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	pinned := !a.IsPinned
	return s.repo.Update(ctx, id, models.AccountPatch{IsPinned: &pinned})
}

func (s *AccountService) ToggleHighlight(ctx context.Context, id int64) error {
	a, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	hl := !a.IsHighlighted
	return s.repo.Update(ctx, id, models.AccountPatch{IsHighlighted: &hl})
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *AccountService) get(ctx context.Context, id int64) (models.Account, error) {
	matches, err := s.repo.Filter(ctx, func(a models.Account) bool { return a.ID == id })
	if err != nil {
		return models.Account{}, err
	}
	if len(matches) == 0 {
		return models.Account{}, fmt.Errorf("account %d: %w", id, common.ErrNotFound)
	}
	return matches[0], nil
}
