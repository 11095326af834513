package storage

import (
	"context"
	"fmt"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/dbx"
	"github.com/pumpkin2800/zarqon/internal/vault/live"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
)

// SocialRepo persists SocialStat records.
type SocialRepo struct {
	db     dbx.DBTX
	notify func(collection string)
}

func (r *SocialRepo) Add(ctx context.Context, s models.SocialStat) (int64, error) {
	if s.ID != 0 {
		return 0, fmt.Errorf("%w: add requires a record without id", common.ErrSchemaViolation)
	}
	return r.insert(ctx, s)
}

// Restore inserts a record keeping its identifier; used by import only.
func (r *SocialRepo) Restore(ctx context.Context, s models.SocialStat) error {
	_, err := r.insert(ctx, s)
	return err
}

func (r *SocialRepo) insert(ctx context.Context, s models.SocialStat) (int64, error) {
	cols := []string{"platform", "followers", "views", "date"}
	args := []any{s.Platform, s.Followers, s.Views, encodeTime(s.Date)}
	if s.ID != 0 {
		cols, args = append(cols, "id"), append(args, s.ID)
	}
	return insertRow(ctx, r.db, "social_stats", CollectionSocial, cols, args, r.notify)
}

func (r *SocialRepo) GetAll(ctx context.Context) ([]models.SocialStat, error) {
	live.Touch(ctx, CollectionSocial)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, platform, followers, views, date FROM social_stats`)
	if err != nil {
		return nil, fmt.Errorf("select social stats: %w", mapErr(err))
	}
	defer rows.Close()

	var result []models.SocialStat
	for rows.Next() {
		var (
			s    models.SocialStat
			date string
		)
		if err := rows.Scan(&s.ID, &s.Platform, &s.Followers, &s.Views, &date); err != nil {
			return nil, err
		}
		if s.Date, err = decodeTime(date); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *SocialRepo) Filter(ctx context.Context, pred func(models.SocialStat) bool) ([]models.SocialStat, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.SocialStat
	for _, s := range all {
		if pred(s) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *SocialRepo) Update(ctx context.Context, id int64, p models.SocialPatch) error {
	var sets []string
	var args []any
	if p.Platform != nil {
		sets, args = append(sets, "platform = ?"), append(args, *p.Platform)
	}
	if p.Followers != nil {
		sets, args = append(sets, "followers = ?"), append(args, *p.Followers)
	}
	if p.Views != nil {
		sets, args = append(sets, "views = ?"), append(args, *p.Views)
	}
	if p.Date != nil {
		sets, args = append(sets, "date = ?"), append(args, encodeTime(*p.Date))
	}
	return applyUpdate(ctx, r.db, "social_stats", CollectionSocial, id, sets, args, r.notify)
}

func (r *SocialRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "social_stats", CollectionSocial, id, r.notify)
}

func (r *SocialRepo) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "social_stats", CollectionSocial, r.notify)
}
