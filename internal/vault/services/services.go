// Package services implements the application logic on top of the storage
// repositories: validation, sorting, secret sealing and derived numbers.
package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/prefs"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
)

var validate = validator.New()

// checkValid runs struct validation and wraps failures into ErrValidation.
func checkValid(v any) error {
	if err := validate.Struct(v); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
			return fmt.Errorf("%w: %s failed on %q", common.ErrValidation, ve[0].Field(), ve[0].Tag())
		}
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}

// Services bundles one service per collection plus the summary.
type Services struct {
	Finance      *FinanceService
	Social       *SocialService
	Accounts     *AccountService
	Websites     *WebsiteService
	Certificates *CertificateService
	Courses      *CourseService
	Books        *BookService
	Summary      *SummaryService
}

// New wires every service to the store. secretKey is the passphrase used
// to seal account secrets.
func New(s *storage.Store, p *prefs.Manager, secretKey string, log logging.Logger) *Services {
	svc := &Services{
		Finance:      NewFinanceService(s.Finance, log),
		Social:       NewSocialService(s.Social, log),
		Accounts:     NewAccountService(s.Accounts, secretKey, log),
		Websites:     NewWebsiteService(s.Websites, log),
		Certificates: NewCertificateService(s.Certificates, log),
		Courses:      NewCourseService(s.Courses, log),
		Books:        NewBookService(s.Books, log),
	}
	svc.Summary = NewSummaryService(svc.Finance, svc.Social, svc.Courses, svc.Books, p)
	return svc
}
