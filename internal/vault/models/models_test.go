package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusForProgress(t *testing.T) {
	tests := []struct {
		pct  int
		want CourseStatus
	}{
		{0, CourseNotStarted},
		{1, CourseInProgress},
		{50, CourseInProgress},
		{99, CourseInProgress},
		{100, CourseCompleted},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, StatusForProgress(tc.pct), "pct=%d", tc.pct)
	}
}

func TestSortWebsites_PinnedBeatsPriority(t *testing.T) {
	items := []Website{
		{ID: 1, Name: "high", Priority: PriorityHigh},
		{ID: 2, Name: "low-pinned", Priority: PriorityLow, IsPinned: true},
		{ID: 3, Name: "medium", Priority: PriorityMedium},
	}
	SortWebsites(items)

	assert.Equal(t, int64(2), items[0].ID, "pinned first regardless of priority")
	assert.Equal(t, int64(1), items[1].ID)
	assert.Equal(t, int64(3), items[2].ID)
}

func TestSortAccounts_PinnedThenName(t *testing.T) {
	items := []Account{
		{ID: 1, Name: "zeta"},
		{ID: 2, Name: "alpha"},
		{ID: 3, Name: "mid", IsPinned: true},
	}
	SortAccounts(items)
	assert.Equal(t, []int64{3, 2, 1}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestSortCertificates_NewestFirst(t *testing.T) {
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	items := []Certificate{
		{ID: 1, IssueDate: old},
		{ID: 2, IssueDate: recent},
	}
	SortCertificates(items)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestSortBooks_RatingDesc_NilAsZero(t *testing.T) {
	three, five := 3, 5
	items := []Book{
		{ID: 1, Rating: &three},
		{ID: 2},
		{ID: 3, Rating: &five},
	}
	SortBooks(items)
	assert.Equal(t, []int64{3, 1, 2}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestSortFinanceEntries_DateDescThenIDDesc(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	items := []FinanceEntry{
		{ID: 1, Date: day},
		{ID: 2, Date: day.AddDate(0, 0, 1)},
		{ID: 3, Date: day},
	}
	SortFinanceEntries(items)
	assert.Equal(t, []int64{2, 3, 1}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestSortSocialStats_Chronological(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	items := []SocialStat{
		{ID: 1, Date: day.AddDate(0, 1, 0)},
		{ID: 2, Date: day},
	}
	SortSocialStats(items)
	assert.Equal(t, int64(2), items[0].ID)
}
