package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/live"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupStore(t *testing.T, bus *live.Bus) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "vault.db")
	s, err := Open(context.Background(), dsn, bus, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func entry(kind models.EntryKind, amount string, category string, date time.Time) models.FinanceEntry {
	return models.FinanceEntry{
		Kind:     kind,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func TestOpen_MigrationsCreateAllCollections(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()

	// every collection must be queryable and empty
	fin, err := s.Finance.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, fin)

	soc, err := s.Social.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, soc)

	acc, err := s.Accounts.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, acc)

	web, err := s.Websites.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, web)

	certs, err := s.Certificates.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, certs)

	courses, err := s.Courses.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)

	books, err := s.Books.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	// and every table named by AllCollections must exist in the schema
	for _, name := range AllCollections() {
		var n int
		err := s.db.QueryRowContext(ctx,
			`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "missing table %s", name)
	}
}

func TestOpen_Reopen_PreservesRecords(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "vault.db")
	ctx := context.Background()

	s1, err := Open(ctx, dsn, nil, testLogger())
	require.NoError(t, err)
	id, err := s1.Books.Add(ctx, models.Book{Title: "Dune", Author: "Herbert", Status: models.BookToRead})
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// re-running migrations on an existing database must keep the data
	s2, err := Open(ctx, dsn, nil, testLogger())
	require.NoError(t, err)
	defer s2.Close()

	books, err := s2.Books.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, id, books[0].ID)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestFinance_AddAssignsFreshIDs(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()
	day := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	id1, err := s.Finance.Add(ctx, entry(models.EntryExpense, "50", "Food", day))
	require.NoError(t, err)
	id2, err := s.Finance.Add(ctx, entry(models.EntryIncome, "200", "Salary", day))
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	all, err := s.Finance.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := map[int64]models.FinanceEntry{all[0].ID: all[0], all[1].ID: all[1]}
	got := byID[id1]
	assert.Equal(t, models.EntryExpense, got.Kind)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, "Food", got.Category)
	assert.True(t, got.Date.Equal(day))
}

func TestFinance_AddRejectsPresetID(t *testing.T) {
	s := setupStore(t, nil)

	_, err := s.Finance.Add(context.Background(),
		models.FinanceEntry{ID: 7, Kind: models.EntryIncome, Amount: decimal.New(1, 0), Category: "x", Date: time.Now()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrSchemaViolation))
}

func TestFinance_IDsNeverReused(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()
	day := time.Now().UTC()

	id1, err := s.Finance.Add(ctx, entry(models.EntryExpense, "1", "a", day))
	require.NoError(t, err)
	require.NoError(t, s.Finance.Delete(ctx, id1))

	id2, err := s.Finance.Add(ctx, entry(models.EntryExpense, "2", "b", day))
	require.NoError(t, err)
	assert.Greater(t, id2, id1, "an issued identifier must never be issued again")
}

func TestFinance_UpdatePartialFields(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	id, err := s.Finance.Add(ctx, entry(models.EntryExpense, "50", "Food", day))
	require.NoError(t, err)

	category := "Groceries"
	require.NoError(t, s.Finance.Update(ctx, id, models.FinancePatch{Category: &category}))

	all, err := s.Finance.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Groceries", all[0].Category)
	// untouched fields unchanged
	assert.Equal(t, models.EntryExpense, all[0].Kind)
	assert.True(t, all[0].Amount.Equal(decimal.RequireFromString("50")))
	assert.True(t, all[0].Date.Equal(day))

	// repeating the identical update is a no-op, not an error
	require.NoError(t, s.Finance.Update(ctx, id, models.FinancePatch{Category: &category}))
}

func TestFinance_UpdateMissingID(t *testing.T) {
	s := setupStore(t, nil)
	category := "x"

	err := s.Finance.Update(context.Background(), 12345, models.FinancePatch{Category: &category})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	// an empty patch on a missing id still reports not found
	err = s.Finance.Update(context.Background(), 12345, models.FinancePatch{})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestFinance_DeleteStrict(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()

	id, err := s.Finance.Add(ctx, entry(models.EntryIncome, "10", "misc", time.Now()))
	require.NoError(t, err)

	require.NoError(t, s.Finance.Delete(ctx, id))

	all, err := s.Finance.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// second delete of the same id must fail, not silently succeed
	err = s.Finance.Delete(ctx, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestFinance_Filter(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()
	day := time.Now().UTC()

	_, err := s.Finance.Add(ctx, entry(models.EntryExpense, "50", "Food", day))
	require.NoError(t, err)
	_, err = s.Finance.Add(ctx, entry(models.EntryIncome, "200", "Salary", day))
	require.NoError(t, err)

	income, err := s.Finance.Filter(ctx, func(e models.FinanceEntry) bool {
		return e.Kind == models.EntryIncome
	})
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, "Salary", income[0].Category)
}

func TestWebsites_TagsRoundTrip(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()

	id, err := s.Websites.Add(ctx, models.Website{
		URL:      "https://example.com",
		Name:     "Example",
		Tags:     []string{"dev", "reference", "go"},
		Priority: models.PriorityHigh,
	})
	require.NoError(t, err)

	all, err := s.Websites.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID)
	assert.Equal(t, []string{"dev", "reference", "go"}, all[0].Tags, "tag order must survive")
	assert.Equal(t, models.PriorityHigh, all[0].Priority)
}

func TestCertificates_OptionalFields(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()
	issued := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	expiry := issued.AddDate(3, 0, 0)

	id1, err := s.Certificates.Add(ctx, models.Certificate{
		Name: "CKA", Issuer: "CNCF", IssueDate: issued, ExpiryDate: &expiry, Image: []byte{0x89, 0x50},
	})
	require.NoError(t, err)
	id2, err := s.Certificates.Add(ctx, models.Certificate{
		Name: "BSc", Issuer: "University", IssueDate: issued,
	})
	require.NoError(t, err)

	all, err := s.Certificates.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byID := map[int64]models.Certificate{all[0].ID: all[0], all[1].ID: all[1]}
	require.NotNil(t, byID[id1].ExpiryDate)
	assert.True(t, byID[id1].ExpiryDate.Equal(expiry))
	assert.Equal(t, []byte{0x89, 0x50}, byID[id1].Image)
	assert.Nil(t, byID[id2].ExpiryDate)
	assert.Nil(t, byID[id2].Image)
}

func TestCourses_PatchClearsDeadline(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()
	deadline := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	id, err := s.Courses.Add(ctx, models.Course{
		Name: "Go", Platform: "web", Status: models.CourseNotStarted, Deadline: &deadline,
	})
	require.NoError(t, err)

	var none *time.Time
	require.NoError(t, s.Courses.Update(ctx, id, models.CoursePatch{Deadline: &none}))

	all, err := s.Courses.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Deadline)
}

func TestBooks_RatingRoundTrip(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()

	five := 5
	id, err := s.Books.Add(ctx, models.Book{
		Title: "Dune", Author: "Herbert", Status: models.BookRead, Rating: &five, Cover: []byte{1, 2, 3},
	})
	require.NoError(t, err)

	all, err := s.Books.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID)
	require.NotNil(t, all[0].Rating)
	assert.Equal(t, 5, *all[0].Rating)
	assert.Equal(t, []byte{1, 2, 3}, all[0].Cover)

	// clearing the rating via a double pointer patch
	var noRating *int
	require.NoError(t, s.Books.Update(ctx, id, models.BookPatch{Rating: &noRating}))
	all, err = s.Books.GetAll(ctx)
	require.NoError(t, err)
	assert.Nil(t, all[0].Rating)
}

func TestRestore_PreservesIdentifiers(t *testing.T) {
	s := setupStore(t, nil)
	ctx := context.Background()

	require.NoError(t, s.Social.Restore(ctx, models.SocialStat{
		ID: 42, Platform: "youtube", Followers: 100, Views: 5000, Date: time.Now().UTC(),
	}))

	all, err := s.Social.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(42), all[0].ID)
}
