package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EntryType tells income from expense
type EntryType string

const (
	EntryIncome  EntryType = "INCOME"
	EntryExpense EntryType = "EXPENSE"
)

// EntryStatus is the settlement state of a financial entry
type EntryStatus string

const (
	EntryPaid    EntryStatus = "PAID"
	EntryPending EntryStatus = "PENDING"
)

// FinancialEntry is one line of the financial ledger
type FinancialEntry struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Description string          `json:"description" gorm:"type:varchar(255)"`
	Type        EntryType       `json:"type" gorm:"type:varchar(10);index;not null"`
	Status      EntryStatus     `json:"status" gorm:"type:varchar(10);index;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate assigns an id when the caller did not supply one
func (e *FinancialEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// SaleStatus is the lifecycle state of a sale
type SaleStatus string

const (
	SalePending   SaleStatus = "PENDING"
	SaleCompleted SaleStatus = "COMPLETED"
	SaleCancelled SaleStatus = "CANCELLED"
)

// SaleRecord is one sale as seen by reporting
type SaleRecord struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ClientName string          `json:"client_name" gorm:"type:varchar(255)"`
	Total      decimal.Decimal `json:"total" gorm:"type:decimal(14,2);not null"`
	Status     SaleStatus      `json:"status" gorm:"type:varchar(10);index;not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BeforeCreate assigns an id when the caller did not supply one
func (s *SaleRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
