package services

import (
	"context"
	"sort"

	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
)

// SocialService manages per-platform follower time series.
type SocialService struct {
	repo *storage.SocialRepo
	log  logging.Logger
}

func NewSocialService(repo *storage.SocialRepo, log logging.Logger) *SocialService {
	return &SocialService{repo: repo, log: log}
}

func (s *SocialService) Add(ctx context.Context, st models.SocialStat) (int64, error) {
	if err := checkValid(st); err != nil {
		return 0, err
	}
	return s.repo.Add(ctx, st)
}

// Series returns one platform's points in chronological order.
func (s *SocialService) Series(ctx context.Context, platform string) ([]models.SocialStat, error) {
	stats, err := s.repo.Filter(ctx, func(st models.SocialStat) bool { return st.Platform == platform })
	if err != nil {
		return nil, err
	}
	models.SortSocialStats(stats)
	return stats, nil
}

// Latest returns the most recent point per platform, sorted by platform.
func (s *SocialService) Latest(ctx context.Context) ([]models.SocialStat, error) {
	stats, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]models.SocialStat)
	for _, st := range stats {
		cur, ok := latest[st.Platform]
		if !ok || st.Date.After(cur.Date) || (st.Date.Equal(cur.Date) && st.ID > cur.ID) {
			latest[st.Platform] = st
		}
	}

	out := make([]models.SocialStat, 0, len(latest))
	for _, st := range latest {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Platform < out[j].Platform })
	return out, nil
}

// TotalFollowers sums the latest follower count of every platform.
func (s *SocialService) TotalFollowers(ctx context.Context) (int, error) {
	latest, err := s.Latest(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, st := range latest {
		total += st.Followers
	}
	return total, nil
}

func (s *SocialService) Update(ctx context.Context, id int64, p models.SocialPatch) error {
	return s.repo.Update(ctx, id, p)
}

func (s *SocialService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
