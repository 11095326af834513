package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pumpkin2800/zarqon/internal/vault/prefs"
)

// Snapshot is the read-only cross-collection digest exposed to consumers
// outside the vault. It carries derived numbers only, never records.
type Snapshot struct {
	UserName string
	NetWorth string

	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal

	Followers        int
	BooksRead        int
	CoursesActive    int
	CoursesCompleted int
}

// SummaryService derives the snapshot from the other services. External
// surfaces consume the vault through this service alone.
type SummaryService struct {
	finance *FinanceService
	social  *SocialService
	courses *CourseService
	books   *BookService
	prefs   *prefs.Manager
}

func NewSummaryService(f *FinanceService, s *SocialService, c *CourseService, b *BookService, p *prefs.Manager) *SummaryService {
	return &SummaryService{finance: f, social: s, courses: c, books: b, prefs: p}
}

// Snapshot computes the digest from the current state of every collection.
func (s *SummaryService) Snapshot(ctx context.Context) (Snapshot, error) {
	totals, err := s.finance.Totals(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	followers, err := s.social.TotalFollowers(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	active, err := s.courses.Active(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	completed, err := s.courses.Completed(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	read, err := s.books.FinishedCount(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	p := s.prefs.Get()
	return Snapshot{
		UserName:         p.UserName,
		NetWorth:         p.FormatNetWorth(),
		Income:           totals.Income,
		Expenses:         totals.Expenses,
		Net:              totals.Net,
		Followers:        followers,
		BooksRead:        read,
		CoursesActive:    len(active),
		CoursesCompleted: len(completed),
	}, nil
}
