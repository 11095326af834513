// Package models defines the seven vault record kinds and their display rules.
//
// Identifiers are store-assigned: a record with ID == 0 has not been saved
// yet. The store never validates field contents; callers validate before
// writing (see internal/vault/services).
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a finance entry.
type EntryKind string

const (
	EntryIncome  EntryKind = "income"
	EntryExpense EntryKind = "expense"
)

// FinanceEntry is a single income or expense record.
type FinanceEntry struct {
	ID       int64           `json:"id,omitempty"`
	Kind     EntryKind       `json:"type" validate:"required,oneof=income expense"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category" validate:"required"`
	Date     time.Time       `json:"date" validate:"required"`
	Note     string          `json:"note,omitempty"`
}

// FinancePatch is a partial update; nil fields are left unchanged.
type FinancePatch struct {
	Kind     *EntryKind
	Amount   *decimal.Decimal
	Category *string
	Date     *time.Time
	Note     *string
}
