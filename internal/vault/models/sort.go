package models

import (
	"sort"
	"strings"
)

// Display sorts. Pinned records always come first; the secondary key varies
// per collection. Sorts are stable so equal records keep persisted order.

// pinnedFirst reports whether a should sort before b by pin state alone,
// and whether the pin state decides the order at all.
func pinnedFirst(aPinned, bPinned bool) (before, decided bool) {
	if aPinned != bPinned {
		return aPinned, true
	}
	return false, false
}

// SortWebsites orders pinned first, then by priority (high to low), then
// by name.
func SortWebsites(items []Website) {
	sort.SliceStable(items, func(i, j int) bool {
		if before, ok := pinnedFirst(items[i].IsPinned, items[j].IsPinned); ok {
			return before
		}
		if items[i].Priority.rank() != items[j].Priority.rank() {
			return items[i].Priority.rank() > items[j].Priority.rank()
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

// SortAccounts orders pinned first, then by name.
func SortAccounts(items []Account) {
	sort.SliceStable(items, func(i, j int) bool {
		if before, ok := pinnedFirst(items[i].IsPinned, items[j].IsPinned); ok {
			return before
		}
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
}

// SortCertificates orders pinned first, then by issue date (newest first).
func SortCertificates(items []Certificate) {
	sort.SliceStable(items, func(i, j int) bool {
		if before, ok := pinnedFirst(items[i].IsPinned, items[j].IsPinned); ok {
			return before
		}
		return items[i].IssueDate.After(items[j].IssueDate)
	})
}

// SortBooks orders pinned first, then by rating (highest first).
func SortBooks(items []Book) {
	sort.SliceStable(items, func(i, j int) bool {
		if before, ok := pinnedFirst(items[i].IsPinned, items[j].IsPinned); ok {
			return before
		}
		ri, rj := 0, 0
		if items[i].Rating != nil {
			ri = *items[i].Rating
		}
		if items[j].Rating != nil {
			rj = *items[j].Rating
		}
		return ri > rj
	})
}

// SortFinanceEntries orders newest first; entries on the same date keep
// insertion order reversed (highest id first).
func SortFinanceEntries(items []FinanceEntry) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].ID > items[j].ID
	})
}

// SortSocialStats orders oldest first, forming a time series.
func SortSocialStats(items []SocialStat) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}
