package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/dbx"
	"github.com/pumpkin2800/zarqon/internal/vault/live"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
)

// WebsiteRepo persists Website records. Tags keep their order and are
// stored as a JSON array in a single column.
type WebsiteRepo struct {
	db     dbx.DBTX
	notify func(collection string)
}

func (r *WebsiteRepo) Add(ctx context.Context, w models.Website) (int64, error) {
	if w.ID != 0 {
		return 0, fmt.Errorf("%w: add requires a record without id", common.ErrSchemaViolation)
	}
	return r.insert(ctx, w)
}

// Restore inserts a record keeping its identifier; used by import only.
func (r *WebsiteRepo) Restore(ctx context.Context, w models.Website) error {
	_, err := r.insert(ctx, w)
	return err
}

func (r *WebsiteRepo) insert(ctx context.Context, w models.Website) (int64, error) {
	tags, err := encodeTags(w.Tags)
	if err != nil {
		return 0, err
	}
	cols := []string{"url", "name", "tags", "priority", "notes", "is_pinned", "is_highlighted"}
	args := []any{w.URL, w.Name, tags, string(w.Priority), w.Notes, w.IsPinned, w.IsHighlighted}
	if w.ID != 0 {
		cols, args = append(cols, "id"), append(args, w.ID)
	}
	return insertRow(ctx, r.db, "websites", CollectionWebsites, cols, args, r.notify)
}

func (r *WebsiteRepo) GetAll(ctx context.Context) ([]models.Website, error) {
	live.Touch(ctx, CollectionWebsites)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, url, name, tags, priority, notes, is_pinned, is_highlighted FROM websites`)
	if err != nil {
		return nil, fmt.Errorf("select websites: %w", mapErr(err))
	}
	defer rows.Close()

	var result []models.Website
	for rows.Next() {
		var (
			w              models.Website
			tags, priority string
		)
		if err := rows.Scan(&w.ID, &w.URL, &w.Name, &tags, &priority,
			&w.Notes, &w.IsPinned, &w.IsHighlighted); err != nil {
			return nil, err
		}
		w.Priority = models.Priority(priority)
		if w.Tags, err = decodeTags(tags); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

func (r *WebsiteRepo) Filter(ctx context.Context, pred func(models.Website) bool) ([]models.Website, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.Website
	for _, w := range all {
		if pred(w) {
			result = append(result, w)
		}
	}
	return result, nil
}

func (r *WebsiteRepo) Update(ctx context.Context, id int64, p models.WebsitePatch) error {
	var sets []string
	var args []any
	if p.URL != nil {
		sets, args = append(sets, "url = ?"), append(args, *p.URL)
	}
	if p.Name != nil {
		sets, args = append(sets, "name = ?"), append(args, *p.Name)
	}
	if p.Tags != nil {
		tags, err := encodeTags(*p.Tags)
		if err != nil {
			return err
		}
		sets, args = append(sets, "tags = ?"), append(args, tags)
	}
	if p.Priority != nil {
		sets, args = append(sets, "priority = ?"), append(args, string(*p.Priority))
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
	return applyUpdate(ctx, r.db, "websites", CollectionWebsites, id, sets, args, r.notify)
}

func (r *WebsiteRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "websites", CollectionWebsites, id, r.notify)
}

func (r *WebsiteRepo) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "websites", CollectionWebsites, r.notify)
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

func decodeTags(s string) ([]string, error) {
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, fmt.Errorf("decode tags %q: %w", s, err)
	}
	return tags, nil
}
