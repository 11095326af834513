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

// CourseRepo persists Course records. Status derivation from the completion
// percentage is a service concern; the repo stores what it is given.
type CourseRepo struct {
	db     dbx.DBTX
	notify func(collection string)
}

func (r *CourseRepo) Add(ctx context.Context, c models.Course) (int64, error) {
	if c.ID != 0 {
		return 0, fmt.Errorf("%w: add requires a record without id", common.ErrSchemaViolation)
	}
	return r.insert(ctx, c)
}

// Restore inserts a record keeping its identifier; used by import only.
func (r *CourseRepo) Restore(ctx context.Context, c models.Course) error {
	_, err := r.insert(ctx, c)
	return err
}

func (r *CourseRepo) insert(ctx context.Context, c models.Course) (int64, error) {
	cols := []string{"name", "platform", "link", "completion_percentage", "status", "deadline", "is_pinned", "is_highlighted"}
	args := []any{c.Name, c.Platform, c.Link, c.CompletionPercentage, string(c.Status), encodeTimePtr(c.Deadline), c.IsPinned, c.IsHighlighted}
	if c.ID != 0 {
		cols, args = append(cols, "id"), append(args, c.ID)
	}
	return insertRow(ctx, r.db, "courses", CollectionCourses, cols, args, r.notify)
}

func (r *CourseRepo) GetAll(ctx context.Context) ([]models.Course, error) {
	live.Touch(ctx, CollectionCourses)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, platform, link, completion_percentage, status, deadline, is_pinned, is_highlighted FROM courses`)
	if err != nil {
		return nil, fmt.Errorf("select courses: %w", mapErr(err))
	}
	defer rows.Close()

	var result []models.Course
	for rows.Next() {
		var (
			c        models.Course
			status   string
			deadline sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Platform, &c.Link, &c.CompletionPercentage,
			&status, &deadline, &c.IsPinned, &c.IsHighlighted); err != nil {
			return nil, err
		}
		c.Status = models.CourseStatus(status)
		if c.Deadline, err = decodeTimePtr(deadline); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *CourseRepo) Filter(ctx context.Context, pred func(models.Course) bool) ([]models.Course, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.Course
	for _, c := range all {
		if pred(c) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *CourseRepo) Update(ctx context.Context, id int64, p models.CoursePatch) error {
	var sets []string
	var args []any
	if p.Name != nil {
		sets, args = append(sets, "name = ?"), append(args, *p.Name)
	}
	if p.Platform != nil {
		sets, args = append(sets, "platform = ?"), append(args, *p.Platform)
	}
	if p.Link != nil {
		sets, args = append(sets, "link = ?"), append(args, *p.Link)
	}
	if p.CompletionPercentage != nil {
		sets, args = append(sets, "completion_percentage = ?"), append(args, *p.CompletionPercentage)
	}
	if p.Status != nil {
		sets, args = append(sets, "status = ?"), append(args, string(*p.Status))
	}
	if p.Deadline != nil {
		sets, args = append(sets, "deadline = ?"), append(args, encodeTimePtr(*p.Deadline))
	}
	if p.IsPinned != nil {
		sets, args = append(sets, "is_pinned = ?"), append(args, *p.IsPinned)
	}
	if p.IsHighlighted != nil {
		sets, args = append(sets, "is_highlighted = ?"), append(args, *p.IsHighlighted)
	}
	return applyUpdate(ctx, r.db, "courses", CollectionCourses, id, sets, args, r.notify)
}

func (r *CourseRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "courses", CollectionCourses, id, r.notify)
}

func (r *CourseRepo) Clear(ctx context.Context) error {
	return clearTable(ctx, r.db, "courses", CollectionCourses, r.notify)
}
