package storage

import (
	"context"
	"fmt"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/dbx"
	"github.com/pumpkin2800/zarqon/internal/vault/live"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
)

// AccountRepo persists Account records. The secret column holds ciphertext
// only; sealing happens in the service layer before the record gets here.
type AccountRepo struct {
	db     dbx.DBTX
	notify func(collection string)
}

func (r *AccountRepo) Add(ctx context.Context, a models.Account) (int64, error) {
	if a.ID != 0 {
		return 0, fmt.Errorf("%w: add requires a record without id", common.ErrSchemaViolation)
	}
	return r.insert(ctx, a)
}

// Restore inserts a record keeping its identifier; used by import only.
func (r *AccountRepo) Restore(ctx context.Context, a models.Account) error {
	_, err := r.insert(ctx, a)
	return err
}

func (r *AccountRepo) insert(ctx context.Context, a models.Account) (int64, error) {
	cols := []string{"name", "username", "encrypted_secret", "notes", "category", "is_pinned", "is_highlighted"}
	args := []any{a.Name, a.Username, a.EncryptedSecret, a.Notes, a.Category, a.IsPinned, a.IsHighlighted}
	if a.ID != 0 {
		cols, args = append(cols, "id"), append(args, a.ID)
	}
	return insertRow(ctx, r.db, "accounts", CollectionAccounts, cols, args, r.notify)
}

func (r *AccountRepo) GetAll(ctx context.Context) ([]models.Account, error) {
	live.Touch(ctx, CollectionAccounts)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, username, encrypted_secret, notes, category, is_pinned, is_highlighted FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("select accounts: %w", mapErr(err))
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Username, &a.EncryptedSecret,
			&a.Notes, &a.Category, &a.IsPinned, &a.IsHighlighted); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *AccountRepo) Filter(ctx context.Context, pred func(models.Account) bool) ([]models.Account, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.Account
	for _, a := range all {
		if pred(a) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *AccountRepo) Update(ctx context.Context, id int64, p models.AccountPatch) error {
	var sets []string
	var args []any
	if p.Name != nil {
		sets, args = append(sets, "name = ?"), append(args, *p.Name)
	}
	if p.Username != nil {
		sets, args = append(sets, "username = ?"), append(args, *p.Username)
	}
	if p.EncryptedSecret != nil {
		sets, args = append(sets, "encrypted_secret = ?"), append(args, *p.EncryptedSecret)
	}
	if p.Notes != nil {
		sets, args = append(sets, "notes = ?"), append(args, *p.Notes)
	}
	if p.Category != nil {
		sets, args = append(sets, "category = ?"), append(args, *p.Category)
	}
	if p.IsPinned != nil {
		sets, args = append(sets, "is_pinned = ?"), append(args, *p.IsPinned)
	}
	if p.IsHighlighted != nil {
		sets, args = append(sets, "is_highlighted = ?"), append(args, *p.IsHighlighted)
	}
	return applyUpdate(ctx, r.db, "accounts", CollectionAccounts, id, sets, args, r.notify)
}

func (r *AccountRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "accounts", CollectionAccounts, id, r.notify)
}

func (r *AccountRepo) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "accounts", CollectionAccounts, r.notify)
}
