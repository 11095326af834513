package models

import "time"

// Certificate is an earned credential, optionally with a scanned image.
// Image bytes never appear in JSON backups.
type Certificate struct {
	ID            int64      `json:"id,omitempty"`
	Name          string     `json:"name" validate:"required"`
	Issuer        string     `json:"issuer" validate:"required"`
	IssueDate     time.Time  `json:"issueDate" validate:"required"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"`
	Image         []byte     `json:"-"`
	IsPinned      bool       `json:"isPinned,omitempty"`
	IsHighlighted bool       `json:"isHighlighted,omitempty"`
}

// CertificatePatch is a partial update; nil fields are left unchanged.
type CertificatePatch struct {
	Name          *string
	Issuer        *string
	IssueDate     *time.Time
	ExpiryDate    **time.Time
	Image         *[]byte
	IsPinned      *bool
	IsHighlighted *bool
}
