// Package backup implements the portable JSON backup of the vault: a single
// human-readable document holding every collection.
//
// The format is deliberately lossy: image blobs (certificate scans, book
// covers) are omitted on export and stripped on import. Only record
// metadata round-trips.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/filex"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
	"github.com/shopspring/decimal"
)

// FormatVersion is the backup document version this build reads and writes.
const FormatVersion = 1

func init() {
	// amounts are plain JSON numbers in the document
	decimal.MarshalJSONWithoutQuotes = true
}

// Document is the top-level backup structure. Version and FinanceEntries
// are required on import; every other collection key is optional.
type Document struct {
	Version        *int                  `json:"version"`
	ExportDate     time.Time             `json:"exportDate"`
	FinanceEntries []models.FinanceEntry `json:"financeEntries"`
	SocialStats    []models.SocialStat   `json:"socialStats"`
	Accounts       []models.Account      `json:"accounts"`
	Websites       []models.Website      `json:"websites"`
	Certificates   []models.Certificate  `json:"certificates"`
	Courses        []models.Course       `json:"courses"`
	Books          []models.Book         `json:"books"`
}

// Export reads every collection and writes the backup document to w.
func Export(ctx context.Context, s *storage.Store, w io.Writer) error {
	version := FormatVersion
	doc := Document{Version: &version, ExportDate: time.Now().UTC()}

	var err error
	if doc.FinanceEntries, err = s.Finance.GetAll(ctx); err != nil {
		return fmt.Errorf("export finance entries: %w", err)
	}
	if doc.FinanceEntries == nil {
		doc.FinanceEntries = []models.FinanceEntry{}
	}
	if doc.SocialStats, err = s.Social.GetAll(ctx); err != nil {
		return fmt.Errorf("export social stats: %w", err)
	}
	if doc.Accounts, err = s.Accounts.GetAll(ctx); err != nil {
		return fmt.Errorf("export accounts: %w", err)
	}
	if doc.Websites, err = s.Websites.GetAll(ctx); err != nil {
		return fmt.Errorf("export websites: %w", err)
	}
	if doc.Certificates, err = s.Certificates.GetAll(ctx); err != nil {
		return fmt.Errorf("export certificates: %w", err)
	}
	if doc.Courses, err = s.Courses.GetAll(ctx); err != nil {
		return fmt.Errorf("export courses: %w", err)
	}
	if doc.Books, err = s.Books.GetAll(ctx); err != nil {
		return fmt.Errorf("export books: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

// Import replaces the entire store content with the document read from r.
// This is a full replace, not a merge: every collection is cleared inside
// one transaction, then the collections present in the document are
// re-populated with their identifiers preserved. A collection absent from
// the document ends up empty. Blob fields never survive the trip.
//
// The caller is responsible for obtaining user confirmation first.
func Import(ctx context.Context, s *storage.Store, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidFormat, err)
	}
	if doc.Version == nil || *doc.Version != FormatVersion {
		return fmt.Errorf("%w: missing or unsupported version tag", common.ErrInvalidFormat)
	}
	if doc.FinanceEntries == nil {
		return fmt.Errorf("%w: missing financeEntries", common.ErrInvalidFormat)
	}

	return s.WithTx(ctx, func(ctx context.Context, c *storage.Collections) error {
		if err := clearAll(ctx, c); err != nil {
			return err
		}
		for _, e := range doc.FinanceEntries {
			if err := c.Finance.Restore(ctx, e); err != nil {
				return err
			}
		}
		for _, st := range doc.SocialStats {
			if err := c.Social.Restore(ctx, st); err != nil {
				return err
			}
		}
		for _, a := range doc.Accounts {
			if err := c.Accounts.Restore(ctx, a); err != nil {
				return err
			}
		}
		for _, w := range doc.Websites {
			if err := c.Websites.Restore(ctx, w); err != nil {
				return err
			}
		}
		for _, cert := range doc.Certificates {
			if err := c.Certificates.Restore(ctx, cert); err != nil {
				return err
			}
		}
		for _, course := range doc.Courses {
			if err := c.Courses.Restore(ctx, course); err != nil {
				return err
			}
		}
		for _, b := range doc.Books {
			if err := c.Books.Restore(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reset is the factory reset: one transaction clearing every collection.
// The caller is responsible for obtaining user confirmation first.
func Reset(ctx context.Context, s *storage.Store) error {
	return s.WithTx(ctx, clearAll)
}

func clearAll(ctx context.Context, c *storage.Collections) error {
	if err := c.Finance.Clear(ctx); err != nil {
		return err
	}
	if err := c.Social.Clear(ctx); err != nil {
		return err
	}
	if err := c.Accounts.Clear(ctx); err != nil {
		return err
	}
	if err := c.Websites.Clear(ctx); err != nil {
		return err
	}
	if err := c.Certificates.Clear(ctx); err != nil {
		return err
	}
	if err := c.Courses.Clear(ctx); err != nil {
		return err
	}
	return c.Books.Clear(ctx)
}

// FileName returns the conventional backup file name for the given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("empire-backup-%s.json", now.UTC().Format("2006-01-02"))
}

// ExportToFile writes the backup document into dir and returns the path.
func ExportToFile(ctx context.Context, s *storage.Store, dir string) (string, error) {
	if _, err := filex.EnsureDir(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(time.Now()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	defer f.Close()

	if err := Export(ctx, s, f); err != nil {
		return "", err
	}
	return path, nil
}

// ImportFromFile replaces the store content with the document at path.
func ImportFromFile(ctx context.Context, s *storage.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()
	return Import(ctx, s, f)
}
