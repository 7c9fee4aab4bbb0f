// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Date          time.Time       `gorm:"type:timestamptz;not null;index"`
	Category      string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:text;not null"`
	Type          string          `gorm:"type:varchar(10);not null;index"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Recurrence    string          `gorm:"type:varchar(10);not null;default:'none'"`
	Tags          pq.StringArray  `gorm:"type:text[]"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationship (not loaded by default); owns the cascade delete.
	User *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		Date:          m.Date,
		Category:      m.Category,
		Description:   m.Description,
		Type:          entity.TransactionType(m.Type),
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Recurrence:    entity.Recurrence(m.Recurrence),
		Tags:          []string(m.Tags),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            transaction.ID,
		UserID:        transaction.UserID,
		Amount:        transaction.Amount,
		Date:          transaction.Date,
		Category:      transaction.Category,
		Description:   transaction.Description,
		Type:          string(transaction.Type),
		PaymentMethod: string(transaction.PaymentMethod),
		Recurrence:    string(transaction.Recurrence),
		Tags:          pq.StringArray(transaction.Tags),
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
