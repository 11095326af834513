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

// CertificateRepo persists Certificate records, image blob included.
type CertificateRepo struct {
	db     dbx.DBTX
	notify func(collection string)
}

func (r *CertificateRepo) Add(ctx context.Context, c models.Certificate) (int64, error) {
	if c.ID != 0 {
		return 0, fmt.Errorf("%w: add requires a record without id", common.ErrSchemaViolation)
	}
	return r.insert(ctx, c)
}

// Restore inserts a record keeping its identifier; used by import only.
func (r *CertificateRepo) Restore(ctx context.Context, c models.Certificate) error {
	_, err := r.insert(ctx, c)
	return err
}

func (r *CertificateRepo) insert(ctx context.Context, c models.Certificate) (int64, error) {
	cols := []string{"name", "issuer", "issue_date", "expiry_date", "image", "is_pinned", "is_highlighted"}
	args := []any{c.Name, c.Issuer, encodeTime(c.IssueDate), encodeTimePtr(c.ExpiryDate), c.Image, c.IsPinned, c.IsHighlighted}
	if c.ID != 0 {
		cols, args = append(cols, "id"), append(args, c.ID)
	}
	return insertRow(ctx, r.db, "certificates", CollectionCertificates, cols, args, r.notify)
}

func (r *CertificateRepo) GetAll(ctx context.Context) ([]models.Certificate, error) {
	live.Touch(ctx, CollectionCertificates)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, issuer, issue_date, expiry_date, image, is_pinned, is_highlighted FROM certificates`)
	if err != nil {
		return nil, fmt.Errorf("select certificates: %w", mapErr(err))
	}
	defer rows.Close()

	var result []models.Certificate
	for rows.Next() {
		var (
			c      models.Certificate
			issued string
			expiry sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Issuer, &issued, &expiry,
			&c.Image, &c.IsPinned, &c.IsHighlighted); err != nil {
			return nil, err
		}
		if c.IssueDate, err = decodeTime(issued); err != nil {
			return nil, err
		}
		if c.ExpiryDate, err = decodeTimePtr(expiry); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *CertificateRepo) Filter(ctx context.Context, pred func(models.Certificate) bool) ([]models.Certificate, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.Certificate
	for _, c := range all {
		if pred(c) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *CertificateRepo) Update(ctx context.Context, id int64, p models.CertificatePatch) error {
	var sets []string
	var args []any
	if p.Name != nil {
		sets, args = append(sets, "name = ?"), append(args, *p.Name)
	}
	if p.Issuer != nil {
		sets, args = append(sets, "issuer = ?"), append(args, *p.Issuer)
	}
	if p.IssueDate != nil {
		sets, args = append(sets, "issue_date = ?"), append(args, encodeTime(*p.IssueDate))
	}
	if p.ExpiryDate != nil {
		sets, args = append(sets, "expiry_date = ?"), append(args, encodeTimePtr(*p.ExpiryDate))
	}
	if p.Image != nil {
		sets, args = append(sets, "image = ?"), append(args, *p.Image)
	}
	if p.IsPinned != nil {
		sets, args = append(sets, "is_pinned = ?"), append(args, *p.IsPinned)
	}
	if p.IsHighlighted != nil {
		sets, args = append(sets, "is_highlighted = ?"), append(args, *p.IsHighlighted)
	}
	return applyUpdate(ctx, r.db, "certificates", CollectionCertificates, id, sets, args, r.notify)
}

func (r *CertificateRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "certificates", CollectionCertificates, id, r.notify)
}

func (r *CertificateRepo) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "certificates", CollectionCertificates, r.notify)
}
