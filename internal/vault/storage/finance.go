package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/dbx"
	"github.com/pumpkin2800/zarqon/internal/vault/live"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
	"github.com/shopspring/decimal"
)

// FinanceRepo persists FinanceEntry records.
type FinanceRepo struct {
	db     dbx.DBTX
	notify func(collection string)
}

// Add persists a record without an identifier and returns the fresh id.
func (r *FinanceRepo) Add(ctx context.Context, e models.FinanceEntry) (int64, error) {
	if e.ID != 0 {
		return 0, fmt.Errorf("%w: add requires a record without id", common.ErrSchemaViolation)
	}
	return r.insert(ctx, e)
}

// Restore inserts a record keeping its identifier; used by import only.
func (r *FinanceRepo) Restore(ctx context.Context, e models.FinanceEntry) error {
	_, err := r.insert(ctx, e)
	return err
}

func (r *FinanceRepo) insert(ctx context.Context, e models.FinanceEntry) (int64, error) {
	cols := []string{"kind", "amount", "category", "date", "note"}
	args := []any{string(e.Kind), e.Amount.String(), e.Category, encodeTime(e.Date), e.Note}
	if e.ID != 0 {
		cols, args = append(cols, "id"), append(args, e.ID)
	}
	return insertRow(ctx, r.db, "finance_entries", CollectionFinance, cols, args, r.notify)
}

// GetAll reads the full collection in unspecified persisted order.
func (r *FinanceRepo) GetAll(ctx context.Context) ([]models.FinanceEntry, error) {
	live.Touch(ctx, CollectionFinance)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, amount, category, date, note FROM finance_entries`)
	if err != nil {
		return nil, fmt.Errorf("select finance entries: %w", mapErr(err))
	}
	defer rows.Close()

	var result []models.FinanceEntry
	for rows.Next() {
		var (
			e            models.FinanceEntry
			kind, amount string
			date         string
		)
		if err := rows.Scan(&e.ID, &kind, &amount, &e.Category, &date, &e.Note); err != nil {
			return nil, err
		}
		e.Kind = models.EntryKind(kind)
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		if e.Date, err = decodeTime(date); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// Filter returns the records matching pred.
func (r *FinanceRepo) Filter(ctx context.Context, pred func(models.FinanceEntry) bool) ([]models.FinanceEntry, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.FinanceEntry
	for _, e := range all {
		if pred(e) {
			result = append(result, e)
		}
	}
	return result, nil
}

// Update merges the non-nil patch fields into the record at id.
func (r *FinanceRepo) Update(ctx context.Context, id int64, p models.FinancePatch) error {
	var sets []string
	var args []any
	if p.Kind != nil {
		sets, args = append(sets, "kind = ?"), append(args, string(*p.Kind))
	}
	if p.Amount != nil {
		sets, args = append(sets, "amount = ?"), append(args, p.Amount.String())
	}
	if p.Category != nil {
		sets, args = append(sets, "category = ?"), append(args, *p.Category)
	}
	if p.Date != nil {
		sets, args = append(sets, "date = ?"), append(args, encodeTime(*p.Date))
	}
	if p.Note != nil {
		sets, args = append(sets, "note = ?"), append(args, *p.Note)
	}
	return applyUpdate(ctx, r.db, "finance_entries", CollectionFinance, id, sets, args, r.notify)
}

// Delete removes the record at id. Strict: a missing id is ErrNotFound,
// including on a repeated delete.
func (r *FinanceRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "finance_entries", CollectionFinance, id, r.notify)
}

// Clear removes every record. Used by import and factory reset only.
func (r *FinanceRepo) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "finance_entries", CollectionFinance, r.notify)
}

// Shared write helpers for all repositories.

func insertRow(ctx context.Context, db dbx.DBTX, table, collection string, cols []string, args []any, notify func(string)) (int64, error) {
	marks := strings.Repeat("?, ", len(cols)-1) + "?"
	res, err := db.ExecContext(ctx,
		`INSERT INTO `+table+` (`+strings.Join(cols, ", ")+`) VALUES (`+marks+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, mapErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	notify(collection)
	return id, nil
}

func applyUpdate(ctx context.Context, db dbx.DBTX, table, collection string, id int64, sets []string, args []any, notify func(string)) error {
	if len(sets) == 0 {
		// Empty patch: still report ErrNotFound for a missing id.
		var one int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM `+table+` WHERE id = ?`, id).Scan(&one)
		if err != nil {
			return mapErr(err)
		}
		return nil
	}
	args = append(args, id)
	res, err := db.ExecContext(ctx,
		`UPDATE `+table+` SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, mapErr(err))
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	notify(collection)
	return nil
}

func deleteByID(ctx context.Context, db dbx.DBTX, table, collection string, id int64, notify func(string)) error {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, mapErr(err))
	}
	if err := requireAffected(res); err != nil {
		return err
	}
	notify(collection)
	return nil
}

func clearTable(ctx context.Context, db dbx.DBTX, table, collection string, notify func(string)) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, mapErr(err))
	}
	notify(collection)
	return nil
}
