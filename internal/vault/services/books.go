package services

import (
	"context"
	"fmt"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
)

// BookService manages the reading list and covers.
type BookService struct {
	repo *storage.BookRepo
	log  logging.Logger
}

func NewBookService(repo *storage.BookRepo, log logging.Logger) *BookService {
	return &BookService{repo: repo, log: log}
}

func (s *BookService) Add(ctx context.Context, b models.Book) (int64, error) {
	if err := checkValid(b); err != nil {
		return 0, err
	}
	return s.repo.Add(ctx, b)
}

// List returns every book, pinned first, then by descending rating.
func (s *BookService) List(ctx context.Context) ([]models.Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	models.SortBooks(books)
	return books, nil
}

// Get returns a single book, cover included.
func (s *BookService) Get(ctx context.Context, id int64) (models.Book, error) {
	matches, err := s.repo.Filter(ctx, func(b models.Book) bool { return b.ID == id })
	if err != nil {
		return models.Book{}, err
	}
	if len(matches) == 0 {
		return models.Book{}, fmt.Errorf("book %d: %w", id, common.ErrNotFound)
	}
	return matches[0], nil
}

// AttachCover replaces the stored cover image.
func (s *BookService) AttachCover(ctx context.Context, id int64, cover []byte) error {
	return s.repo.Update(ctx, id, models.BookPatch{Cover: &cover})
}

// FinishedCount counts the books marked read.
func (s *BookService) FinishedCount(ctx context.Context) (int, error) {
	read, err := s.repo.Filter(ctx, func(b models.Book) bool { return b.Status == models.BookRead })
	if err != nil {
		return 0, err
	}
	return len(read), nil
}

func (s *BookService) Update(ctx context.Context, id int64, p models.BookPatch) error {
	return s.repo.Update(ctx, id, p)
}

func (s *BookService) Rate(ctx context.Context, id int64, rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating %d out of range", common.ErrValidation, rating)
	}
	r := &rating
	return s.repo.Update(ctx, id, models.BookPatch{Rating: &r})
}

func (s *BookService) TogglePin(ctx context.Context, id int64) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	pinned := !b.IsPinned
	return s.repo.Update(ctx, id, models.BookPatch{IsPinned: &pinned})
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
