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

// CertificateService manages earned certificates and their scans.
type CertificateService struct {
	repo *storage.CertificateRepo
	log  logging.Logger
}

func NewCertificateService(repo *storage.CertificateRepo, log logging.Logger) *CertificateService {
	return &CertificateService{repo: repo, log: log}
}

func (s *CertificateService) Add(ctx context.Context, c models.Certificate) (int64, error) {
	if err := checkValid(c); err != nil {
		return 0, err
	}
	return s.repo.Add(ctx, c)
}

// List returns every certificate, pinned first, then newest issue date.
func (s *CertificateService) List(ctx context.Context) ([]models.Certificate, error) {
	certs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	models.SortCertificates(certs)
	return certs, nil
}

// Get returns a single certificate, scan included.
func (s *CertificateService) Get(ctx context.Context, id int64) (models.Certificate, error) {
	matches, err := s.repo.Filter(ctx, func(c models.Certificate) bool { return c.ID == id })
	if err != nil {
		return models.Certificate{}, err
	}
	if len(matches) == 0 {
		return models.Certificate{}, fmt.Errorf("certificate %d: %w", id, common.ErrNotFound)
	}
	return matches[0], nil
}

// AttachImage replaces the stored scan.
func (s *CertificateService) AttachImage(ctx context.Context, id int64, image []byte) error {
	return s.repo.Update(ctx, id, models.CertificatePatch{Image: &image})
}

// ExpiringBefore lists the certificates expiring before the deadline, in
// List order. Certificates without an expiry never expire.
func (s *CertificateService) ExpiringBefore(ctx context.Context, deadline time.Time) ([]models.Certificate, error) {
	certs, err := s.repo.Filter(ctx, func(c models.Certificate) bool {
		return c.ExpiryDate != nil && c.ExpiryDate.Before(deadline)
	})
	if err != nil {
		return nil, err
	}
	models.SortCertificates(certs)
	return certs, nil
}

func (s *CertificateService) Update(ctx context.Context, id int64, p models.CertificatePatch) error {
	return s.repo.Update(ctx, id, p)
}

func (s *CertificateService) TogglePin(ctx context.Context, id int64) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	pinned := !c.IsPinned
	return s.repo.Update(ctx, id, models.CertificatePatch{IsPinned: &pinned})
}

func (s *CertificateService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
