// Package storage is the persistent store for the seven vault collections,
// backed by a local SQLite database with embedded goose migrations.
//
// Each collection has a repository with the same contract: Add assigns a
// fresh identifier and never reuses one; Update and Delete are strict and
// return common.ErrNotFound for a missing identifier (a repeated delete of
// the same identifier fails, it does not silently succeed); Clear empties
// the collection and exists for the import/reset path only.
//
// The store owns change notification: every committed write publishes the
// touched collection on the live.Bus, and every read registers the
// collection with the live.Tracker on the context, if one is present.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/dbx"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/live"
	"github.com/pumpkin2800/zarqon/internal/vault/storage/migrations"

	_ "modernc.org/sqlite"
)

// Collection names, also the table names. The live.Bus and live.Tracker
// speak in these.
const (
	CollectionFinance      = "finance_entries"
	CollectionSocial       = "social_stats"
	CollectionAccounts     = "accounts"
	CollectionWebsites     = "websites"
	CollectionCertificates = "certificates"
	CollectionCourses      = "courses"
	CollectionBooks        = "books"
)

// AllCollections lists every collection in schema order.
func AllCollections() []string {
	return []string{
		CollectionFinance,
		CollectionSocial,
		CollectionAccounts,
		CollectionWebsites,
		CollectionCertificates,
		CollectionCourses,
		CollectionBooks,
	}
}

// Collections bundles the seven repositories over one database handle,
// which is either the live *sql.DB or a transaction.
type Collections struct {
	Finance      *FinanceRepo
	Social       *SocialRepo
	Accounts     *AccountRepo
	Websites     *WebsiteRepo
	Certificates *CertificateRepo
	Courses      *CourseRepo
	Books        *BookRepo
}

func newCollections(db dbx.DBTX, notify func(collection string)) *Collections {
	if notify == nil {
		notify = func(string) {}
	}
	return &Collections{
		Finance:      &FinanceRepo{db: db, notify: notify},
		Social:       &SocialRepo{db: db, notify: notify},
		Accounts:     &AccountRepo{db: db, notify: notify},
		Websites:     &WebsiteRepo{db: db, notify: notify},
		Certificates: &CertificateRepo{db: db, notify: notify},
		Courses:      &CourseRepo{db: db, notify: notify},
		Books:        &BookRepo{db: db, notify: notify},
	}
}

// Store is the durable vault store.
type Store struct {
	*Collections

	db  *sql.DB
	bus *live.Bus
	log logging.Logger
}

// Open opens (or creates) the SQLite database at dsn, applies pragmas and
// embedded migrations, and wires change notification to bus. bus may be nil
// when no live queries are needed (one-shot commands, tests).
func Open(ctx context.Context, dsn string, bus *live.Bus, log logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	s := &Store{db: db, bus: bus, log: log}
	s.Collections = newCollections(db, func(collection string) { s.publish(collection) })
	log.Debug(ctx, "store opened", "dsn", dsn)
	return s, nil
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) publish(collections ...string) {
	if s.bus != nil {
		s.bus.Publish(collections...)
	}
}

// WithTx runs fn against a transactional view of all collections. Either
// every write in fn persists or none does, and no reader observes a partial
// intermediate state. Change notifications for the touched collections are
// published once, after commit.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, c *Collections) error) error {
	var touched []string
	seen := make(map[string]struct{})
	record := func(collection string) {
		if _, ok := seen[collection]; ok {
			return
		}
		seen[collection] = struct{}{}
		touched = append(touched, collection)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, newCollections(tx, record))
	})
	if err != nil {
		return err
	}

	if len(touched) > 0 {
		s.publish(touched...)
	}
	return nil
}

// SQLite primary result codes the store maps to sentinel errors.
const (
	sqliteFull     = 13 // SQLITE_FULL: database or disk is full
	sqliteMismatch = 20 // SQLITE_MISMATCH: datatype mismatch
)

// mapErr translates driver failures into the store's error taxonomy.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrNotFound
	}
	var coded interface{ Code() int }
	if errors.As(err, &coded) {
		switch coded.Code() {
		case sqliteFull:
			return fmt.Errorf("%w: %v", common.ErrStorageFull, err)
		case sqliteMismatch:
			return fmt.Errorf("%w: %v", common.ErrSchemaViolation, err)
		}
	}
	return err
}

// requireAffected turns a zero-row write into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Timestamps are stored as RFC 3339 text so the column sorts and compares
// lexicographically in UTC.

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func encodeTimePtr(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: encodeTime(*t), Valid: true}
}

func decodeTimePtr(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := decodeTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
