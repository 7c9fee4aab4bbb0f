package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/integration/persistence/model"
)

// Demo account credentials. The password is stored as a bcrypt hash like any
// other account.
const (
	SeedUserEmail    = "teste@email.com"
	SeedUserName     = "Usuário de Teste"
	SeedUserPassword = "123"
)

// Fixed IDs keep the seed idempotent: re-running inserts conflict on the
// primary key and are skipped.
var (
	seedUserID = uuid.MustParse("d2a7f0a4-0c6e-4c7b-9a3f-111111111111")

	seedTransactionIDs = [...]uuid.UUID{
		uuid.MustParse("d2a7f0a4-0c6e-4c7b-9a3f-222222222201"),
		uuid.MustParse("d2a7f0a4-0c6e-4c7b-9a3f-222222222202"),
		uuid.MustParse("d2a7f0a4-0c6e-4c7b-9a3f-222222222203"),
		uuid.MustParse("d2a7f0a4-0c6e-4c7b-9a3f-222222222204"),
		uuid.MustParse("d2a7f0a4-0c6e-4c7b-9a3f-222222222205"),
		uuid.MustParse("d2a7f0a4-0c6e-4c7b-9a3f-222222222206"),
	}

	seedGoalIDs = [...]uuid.UUID{
		uuid.MustParse("d2a7f0a4-0c6e-4c7b-9a3f-333333333301"),
		uuid.MustParse("d2a7f0a4-0c6e-4c7b-9a3f-333333333302"),
	}
)

// Seed inserts the demo account with its sample transactions and goals.
// Every insert uses ON CONFLICT DO NOTHING, so concurrent instances starting
// against the same database cannot fail the seed or duplicate rows.
func (d *Database) Seed(passwordService adapter.PasswordService) error {
	return Seed(d.db, passwordService)
}

// Seed runs the demo seed against any GORM connection.
func Seed(gdb *gorm.DB, passwordService adapter.PasswordService) error {
	passwordHash, err := passwordService.HashPassword(SeedUserPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	dayOfMonth := func(day int) time.Time {
		return monthStart.AddDate(0, 0, day-1)
	}

	user := &model.UserModel{
		ID:           seedUserID,
		Email:        SeedUserEmail,
		Name:         SeedUserName,
		PasswordHash: passwordHash,
		Currency:     "BRL",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	transactions := []*model.TransactionModel{
		{
			ID:            seedTransactionIDs[0],
			UserID:        seedUserID,
			Amount:        decimal.NewFromInt(3500),
			Date:          dayOfMonth(1),
			Category:      "Salário",
			Description:   "Salário Mensal",
			Type:          "income",
			PaymentMethod: "bank_transfer",
			Recurrence:    "monthly",
			Tags:          []string{"trabalho"},
		},
		{
			ID:            seedTransactionIDs[1],
			UserID:        seedUserID,
			Amount:        decimal.NewFromInt(1200),
			Date:          dayOfMonth(2),
			Category:      "Moradia",
			Description:   "Aluguel",
			Type:          "expense",
			PaymentMethod: "bank_transfer",
			Recurrence:    "monthly",
			Tags:          []string{"casa"},
		},
		{
			ID:            seedTransactionIDs[2],
			UserID:        seedUserID,
			Amount:        decimal.NewFromFloat(75.50),
			Date:          dayOfMonth(5),
			Category:      "Transporte",
			Description:   "Gasolina",
			Type:          "expense",
			PaymentMethod: "credit_card",
			Recurrence:    "none",
			Tags:          []string{"carro"},
		},
		{
			ID:            seedTransactionIDs[3],
			UserID:        seedUserID,
			Amount:        decimal.NewFromInt(250),
			Date:          dayOfMonth(10),
			Category:      "Alimentação",
			Description:   "Supermercado",
			Type:          "expense",
			PaymentMethod: "debit_card",
			Recurrence:    "weekly",
		},
		{
			ID:            seedTransactionIDs[4],
			UserID:        seedUserID,
			Amount:        decimal.NewFromInt(150),
			Date:          dayOfMonth(12),
			Category:      "Lazer",
			Description:   "Cinema e Jantar",
			Type:          "expense",
			PaymentMethod: "credit_card",
			Recurrence:    "none",
			Tags:          []string{"diversao", "amigos"},
		},
		{
			ID:            seedTransactionIDs[5],
			UserID:        seedUserID,
			Amount:        decimal.NewFromInt(500),
			Date:          dayOfMonth(15),
			Category:      "Freelance",
			Description:   "Projeto de design",
			Type:          "income",
			PaymentMethod: "pix",
			Recurrence:    "none",
		},
	}

	goals := []*model.GoalModel{
		{
			ID:            seedGoalIDs[0],
			UserID:        seedUserID,
			Name:          "Viagem de Férias",
			TargetAmount:  decimal.NewFromInt(5000),
			CurrentAmount: decimal.NewFromInt(1250),
			TargetDate:    time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            seedGoalIDs[1],
			UserID:        seedUserID,
			Name:          "Novo Celular",
			TargetAmount:  decimal.NewFromInt(3000),
			CurrentAmount: decimal.NewFromInt(2800),
			TargetDate:    monthStart.AddDate(0, 2, 0),
		},
	}

	doNothing := clause.OnConflict{DoNothing: true}

	result := gdb.Clauses(doNothing).Create(user)
	if result.Error != nil {
		return fmt.Errorf("failed to seed user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		slog.Info("Seed user already present, skipping sample data", "email", SeedUserEmail)
		return nil
	}

	for _, tx := range transactions {
		tx.CreatedAt = now
		tx.UpdatedAt = now
		if err := gdb.Clauses(doNothing).Create(tx).Error; err != nil {
			return fmt.Errorf("failed to seed transaction %q: %w", tx.Description, err)
		}
	}

	for _, goal := range goals {
		goal.CreatedAt = now
		goal.UpdatedAt = now
		if err := gdb.Clauses(doNothing).Create(goal).Error; err != nil {
			return fmt.Errorf("failed to seed goal %q: %w", goal.Name, err)
		}
	}

	slog.Info("Seeded demo account", "email", SeedUserEmail,
		"transactions", len(transactions), "goals", len(goals))
	return nil
}
