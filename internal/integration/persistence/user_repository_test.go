package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
	"github.com/financas-pro/backend/internal/integration/persistence/model"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("teste@email.com", "Usuário de Teste", "hashed-password")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Email != "teste@email.com" || found.Name != "Usuário de Teste" {
			t.Errorf("unexpected user: %+v", found)
		}
		if found.Currency != entity.CurrencyBRL {
			t.Errorf("expected default currency BRL, got %s", found.Currency)
		}
	})

	t.Run("find by email is case-insensitive", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "TESTE@Email.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.ID != user.ID {
			t.Error("expected the same user")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "ninguem@email.com")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := entity.NewUser("teste@email.com", "Primeira", "hash-1")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := entity.NewUser("teste@email.com", "Segunda", "hash-2")
	err := repo.Create(ctx, second)
	if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}

	var count int64
	db.Model(&model.UserModel{}).Count(&count)
	if count != 1 {
		t.Errorf("expected a single user row, got %d", count)
	}
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("teste@email.com", "Usuário de Teste", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, err := repo.ExistsByEmail(ctx, "Teste@EMAIL.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected case-insensitive match")
	}

	exists, err = repo.ExistsByEmail(ctx, "outro@email.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected no match for unknown email")
	}
}

func TestUserRepository_Update(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("teste@email.com", "Usuário de Teste", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	avatar := "https://example.com/avatar.png"
	user.Name = "Nome Atualizado"
	user.Currency = entity.CurrencyUSD
	user.AvatarURL = &avatar
	user.UpdatedAt = time.Now().UTC()

	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Nome Atualizado" {
		t.Errorf("expected updated name, got %s", found.Name)
	}
	if found.Currency != entity.CurrencyUSD {
		t.Errorf("expected USD, got %s", found.Currency)
	}
	if found.AvatarURL == nil || *found.AvatarURL != avatar {
		t.Error("expected avatar persisted")
	}
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := openTestDB(t)
	userRepo := NewUserRepository(db)
	txRepo := NewTransactionRepository(db)
	goalRepo := NewGoalRepository(db)
	ctx := context.Background()

	user := entity.NewUser("teste@email.com", "Usuário de Teste", "hash")
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tx := entity.NewTransaction(user.ID, decimal.NewFromInt(100), time.Now().UTC(),
		"Lazer", "Cinema", entity.TransactionTypeExpense,
		entity.PaymentMethodPix, entity.RecurrenceNone, nil)
	if _, err := txRepo.Create(ctx, tx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	goal := entity.NewGoal(user.ID, "Viagem", decimal.NewFromInt(5000), decimal.Zero,
		time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC))
	if _, err := goalRepo.Create(ctx, goal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := userRepo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var txCount, goalCount int64
	db.Model(&model.TransactionModel{}).Count(&txCount)
	db.Model(&model.GoalModel{}).Count(&goalCount)
	if txCount != 0 {
		t.Errorf("expected transactions cascade-deleted, %d left", txCount)
	}
	if goalCount != 0 {
		t.Errorf("expected goals cascade-deleted, %d left", goalCount)
	}
}
