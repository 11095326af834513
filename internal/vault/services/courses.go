package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
)

// CourseService manages the learning tracker. Course status is never set
// directly: it follows the completion percentage.
type CourseService struct {
	repo *storage.CourseRepo
	log  logging.Logger
}

func NewCourseService(repo *storage.CourseRepo, log logging.Logger) *CourseService {
	return &CourseService{repo: repo, log: log}
}

// Add stores a course with its status derived from the progress.
func (s *CourseService) Add(ctx context.Context, c models.Course) (int64, error) {
	c.Status = models.StatusForProgress(c.CompletionPercentage)
	if err := checkValid(c); err != nil {
		return 0, err
	}
	return s.repo.Add(ctx, c)
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.GetAll(ctx)
}

// Active lists the courses currently in progress.
func (s *CourseService) Active(ctx context.Context) ([]models.Course, error) {
	return s.repo.Filter(ctx, func(c models.Course) bool { return c.Status == models.CourseInProgress })
}

// Completed lists the finished courses.
func (s *CourseService) Completed(ctx context.Context) ([]models.Course, error) {
	return s.repo.Filter(ctx, func(c models.Course) bool { return c.Status == models.CourseCompleted })
}

// DueBefore lists unfinished courses whose deadline falls before the given
// time. Courses without a deadline are never due.
func (s *CourseService) DueBefore(ctx context.Context, deadline time.Time) ([]models.Course, error) {
	return s.repo.Filter(ctx, func(c models.Course) bool {
		return c.Status != models.CourseCompleted && c.Deadline != nil && c.Deadline.Before(deadline)
	})
}

// UpdateProgress sets the completion percentage and re-derives the status.
func (s *CourseService) UpdateProgress(ctx context.Context, id int64, progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("%w: progress %d out of range", common.ErrValidation, progress)
	}
	status := models.StatusForProgress(progress)
	return s.repo.Update(ctx, id, models.CoursePatch{
		CompletionPercentage: &progress,
		Status:               &status,
	})
}

// Update applies a patch. A progress change re-derives the status; any
// status in the patch is overridden.
func (s *CourseService) Update(ctx context.Context, id int64, p models.CoursePatch) error {
	if p.CompletionPercentage != nil {
		status := models.StatusForProgress(*p.CompletionPercentage)
		p.Status = &status
	}
	return s.repo.Update(ctx, id, p)
}

func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
