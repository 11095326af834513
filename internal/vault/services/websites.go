package services

import (
	"context"
	"fmt"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
)

// WebsiteService manages the bookmarked sites.
type WebsiteService struct {
	repo *storage.WebsiteRepo
	log  logging.Logger
}

func NewWebsiteService(repo *storage.WebsiteRepo, log logging.Logger) *WebsiteService {
	return &WebsiteService{repo: repo, log: log}
}

func (s *WebsiteService) Add(ctx context.Context, w models.Website) (int64, error) {
	if err := checkValid(w); err != nil {
		return 0, err
	}
	return s.repo.Add(ctx, w)
}

// List returns every site, pinned first, then by descending priority.
func (s *WebsiteService) List(ctx context.Context) ([]models.Website, error) {
	sites, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	models.SortWebsites(sites)
	return sites, nil
}

// ListTag returns the sites carrying the given tag, in List order.
func (s *WebsiteService) ListTag(ctx context.Context, tag string) ([]models.Website, error) {
	sites, err := s.repo.Filter(ctx, func(w models.Website) bool {
		for _, t := range w.Tags {
			if t == tag {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	models.SortWebsites(sites)
	return sites, nil
}

func (s *WebsiteService) Update(ctx context.Context, id int64, p models.WebsitePatch) error {
	return s.repo.Update(ctx, id, p)
}

func (s *WebsiteService) TogglePin(ctx context.Context, id int64) error {
	w, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	pinned := !w.IsPinned
	return s.repo.Update(ctx, id, models.WebsitePatch{IsPinned: &pinned})
}

func (s *WebsiteService) ToggleHighlight(ctx context.Context, id int64) error {
	w, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	hl := !w.IsHighlighted
	return s.repo.Update(ctx, id, models.WebsitePatch{IsHighlighted: &hl})
}

func (s *WebsiteService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *WebsiteService) get(ctx context.Context, id int64) (models.Website, error) {
	matches, err := s.repo.Filter(ctx, func(w models.Website) bool { return w.ID == id })
	if err != nil {
		return models.Website{}, err
	}
	if len(matches) == 0 {
		return models.Website{}, fmt.Errorf("website %d: %w", id, common.ErrNotFound)
	}
	return matches[0], nil
}
