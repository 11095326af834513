package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/dbx"
	"github.com/pumpkin2800/zarqon/internal/vault/live"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
)

// BookRepo persists Book records, cover blob included.
type BookRepo struct {
	db     dbx.DBTX
	notify func(collection string)
}

func (r *BookRepo) Add(ctx context.Context, b models.Book) (int64, error) {
	if b.ID != 0 {
		return 0, fmt.Errorf("%w: add requires a record without id", common.ErrSchemaViolation)
	}
	return r.insert(ctx, b)
}

// Restore inserts a record keeping its identifier; used by import only.
func (r *BookRepo) Restore(ctx context.Context, b models.Book) error {
	_, err := r.insert(ctx, b)
	return err
}

func (r *BookRepo) insert(ctx context.Context, b models.Book) (int64, error) {
	cols := []string{"title", "author", "cover", "status", "rating", "notes", "is_pinned", "is_highlighted"}
	args := []any{b.Title, b.Author, b.Cover, string(b.Status), encodeIntPtr(b.Rating), b.Notes, b.IsPinned, b.IsHighlighted}
	if b.ID != 0 {
		cols, args = append(cols, "id"), append(args, b.ID)
	}
	return insertRow(ctx, r.db, "books", CollectionBooks, cols, args, r.notify)
}

func (r *BookRepo) GetAll(ctx context.Context) ([]models.Book, error) {
	live.Touch(ctx, CollectionBooks)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, author, cover, status, rating, notes, is_pinned, is_highlighted FROM books`)
	if err != nil {
		return nil, fmt.Errorf("select books: %w", mapErr(err))
	}
	defer rows.Close()

	var result []models.Book
	for rows.Next() {
		var (
			b      models.Book
			status string
			rating sql.NullInt64
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Cover, &status,
			&rating, &b.Notes, &b.IsPinned, &b.IsHighlighted); err != nil {
			return nil, err
		}
		b.Status = models.BookStatus(status)
		if rating.Valid {
			v := int(rating.Int64)
			b.Rating = &v
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *BookRepo) Filter(ctx context.Context, pred func(models.Book) bool) ([]models.Book, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.Book
	for _, b := range all {
		if pred(b) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *BookRepo) Update(ctx context.Context, id int64, p models.BookPatch) error {
	var sets []string
	var args []any
	if p.Title != nil {
		sets, args = append(sets, "title = ?"), append(args, *p.Title)
	}
	if p.Author != nil {
		sets, args = append(sets, "author = ?"), append(args, *p.Author)
	}
	if p.Cover != nil {
		sets, args = append(sets, "cover = ?"), append(args, *p.Cover)
	}
	if p.Status != nil {
		sets, args = append(sets, "status = ?"), append(args, string(*p.Status))
	}
	if p.Rating != nil {
		sets, args = append(sets, "rating = ?"), append(args, encodeIntPtr(*p.Rating))
	}
	if p.Notes != nil {
		sets, args = append(sets, "notes = ?"), append(args, *p.Notes)
	}
	if p.IsPinned != nil {
		sets, args = append(sets, "is_pinned = ?"), append(args, *p.IsPinned)
	}
	if p.IsHighlighted != nil {
		sets, args = append(sets, "is_highlighted = ?"), append(args, *p.IsHighlighted)
	}
	return applyUpdate(ctx, r.db, "books", CollectionBooks, id, sets, args, r.notify)
}

func (r *BookRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "books", CollectionBooks, id, r.notify)
}

func (r *BookRepo) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "books", CollectionBooks, r.notify)
}

func encodeIntPtr(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
