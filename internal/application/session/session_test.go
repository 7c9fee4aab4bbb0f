package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
)

type fakeUserRepository struct {
	users     map[uuid.UUID]*entity.User
	updateErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepository) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepository) Update(_ context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	findErr      error
	createErr    error
	deleteErr    error
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepository) Create(_ context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	stored := *tx
	r.transactions[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return tx, nil
}

func (r *fakeTransactionRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var result []*entity.Transaction
	for _, tx := range r.transactions {
		if tx.UserID == userID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	if _, ok := r.transactions[tx.ID]; !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	stored := *tx
	r.transactions[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.transactions[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.transactions, id)
	return nil
}

type fakeGoalRepository struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) (*entity.Goal, error) {
	stored := *goal
	r.goals[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return goal, nil
}

func (r *fakeGoalRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var result []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			result = append(result, goal)
		}
	}
	return result, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, goal *entity.Goal) (*entity.Goal, error) {
	if _, ok := r.goals[goal.ID]; !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	stored := *goal
	r.goals[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.goals[id]; !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(r.goals, id)
	return nil
}

func (r *fakeGoalRepository) AddProgress(_ context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	return goal, nil
}

type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(string) error { return nil }

type sessionFixture struct {
	manager  *Manager
	users    *fakeUserRepository
	txRepo   *fakeTransactionRepository
	goalRepo *fakeGoalRepository
	user     *entity.User
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	users := newFakeUserRepository()
	txRepo := newFakeTransactionRepository()
	goalRepo := newFakeGoalRepository()

	user := entity.NewUser("teste@email.com", "Usuário de Teste", "hashed:123")
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return &sessionFixture{
		manager:  NewManager(users, txRepo, goalRepo, fakePasswordService{}),
		users:    users,
		txRepo:   txRepo,
		goalRepo: goalRepo,
		user:     user,
	}
}

func (f *sessionFixture) login(t *testing.T) {
	t.Helper()
	if err := f.manager.Login(context.Background(), "teste@email.com", "123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
}

func TestManagerLogin(t *testing.T) {
	t.Run("starts logged out", func(t *testing.T) {
		f := newSessionFixture(t)

		if got := f.manager.Snapshot().State; got != StateLoggedOut {
			t.Errorf("expected state %s, got %s", StateLoggedOut, got)
		}
	})

	t.Run("successful login reaches ready", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		snap := f.manager.Snapshot()
		if snap.State != StateReady {
			t.Errorf("expected state %s, got %s", StateReady, snap.State)
		}
		if snap.User == nil || snap.User.Email != "teste@email.com" {
			t.Error("expected snapshot to carry the logged-in user")
		}
	})

	t.Run("email is matched case-insensitively", func(t *testing.T) {
		f := newSessionFixture(t)

		if err := f.manager.Login(context.Background(), "Teste@Email.com", "123"); err != nil {
			t.Fatalf("expected case-insensitive login to succeed, got %v", err)
		}
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		f := newSessionFixture(t)

		err := f.manager.Login(context.Background(), "teste@email.com", "wrong")
		if err == nil {
			t.Fatal("expected an error")
		}
		if got := f.manager.Snapshot().State; got != StateLoggedOut {
			t.Errorf("expected state %s after failed login, got %s", StateLoggedOut, got)
		}
	})

	t.Run("load failure returns to logged out", func(t *testing.T) {
		f := newSessionFixture(t)
		f.txRepo.findErr = errors.New("connection refused")

		err := f.manager.Login(context.Background(), "teste@email.com", "123")
		if err == nil {
			t.Fatal("expected an error")
		}

		snap := f.manager.Snapshot()
		if snap.State != StateLoggedOut {
			t.Errorf("expected state %s, got %s", StateLoggedOut, snap.State)
		}
		if snap.User != nil {
			t.Error("expected no user after failed load")
		}
	})

	t.Run("login loads existing data sorted", func(t *testing.T) {
		f := newSessionFixture(t)

		older := entity.NewTransaction(f.user.ID, decimal.NewFromInt(100),
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			"Lazer", "older", entity.TransactionTypeExpense,
			entity.PaymentMethodPix, entity.RecurrenceNone, nil)
		newer := entity.NewTransaction(f.user.ID, decimal.NewFromInt(200),
			time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			"Lazer", "newer", entity.TransactionTypeExpense,
			entity.PaymentMethodPix, entity.RecurrenceNone, nil)
		f.txRepo.transactions[older.ID] = older
		f.txRepo.transactions[newer.ID] = newer

		f.login(t)

		snap := f.manager.Snapshot()
		if len(snap.Transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(snap.Transactions))
		}
		if snap.Transactions[0].ID != newer.ID {
			t.Error("expected transactions sorted date-descending")
		}
	})
}

func TestManagerLogout(t *testing.T) {
	f := newSessionFixture(t)
	f.login(t)

	f.manager.Logout()

	snap := f.manager.Snapshot()
	if snap.State != StateLoggedOut {
		t.Errorf("expected state %s, got %s", StateLoggedOut, snap.State)
	}
	if snap.User != nil || len(snap.Transactions) != 0 || len(snap.Goals) != 0 {
		t.Error("expected all session data cleared after logout")
	}
}

func TestManagerSaveTransaction(t *testing.T) {
	t.Run("rejected before login", func(t *testing.T) {
		f := newSessionFixture(t)

		tx := &entity.Transaction{Amount: decimal.NewFromInt(10)}
		if _, err := f.manager.SaveTransaction(context.Background(), tx); !errors.Is(err, ErrNotReady) {
			t.Errorf("expected ErrNotReady, got %v", err)
		}
	})

	t.Run("nil ID creates with session user", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		tx := &entity.Transaction{
			Amount:        decimal.RequireFromString("75.50"),
			Date:          time.Now().UTC(),
			Category:      "Transporte",
			Description:   "Gasolina",
			Type:          entity.TransactionTypeExpense,
			PaymentMethod: entity.PaymentMethodCreditCard,
			Recurrence:    entity.RecurrenceNone,
		}

		stored, err := f.manager.SaveTransaction(context.Background(), tx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.ID == uuid.Nil {
			t.Error("expected a generated ID")
		}
		if stored.UserID != f.user.ID {
			t.Error("expected the session user as owner")
		}
		if got := len(f.manager.Snapshot().Transactions); got != 1 {
			t.Errorf("expected 1 mirrored transaction, got %d", got)
		}
	})

	t.Run("existing ID updates in place", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		stored, err := f.manager.SaveTransaction(context.Background(), &entity.Transaction{
			Amount:        decimal.NewFromInt(100),
			Date:          time.Now().UTC(),
			Category:      "Lazer",
			Description:   "Cinema",
			Type:          entity.TransactionTypeExpense,
			PaymentMethod: entity.PaymentMethodPix,
			Recurrence:    entity.RecurrenceNone,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored.Amount = decimal.NewFromInt(150)
		updated, err := f.manager.SaveTransaction(context.Background(), stored)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected amount 150, got %s", updated.Amount)
		}
		if got := len(f.manager.Snapshot().Transactions); got != 1 {
			t.Errorf("expected 1 mirrored transaction after update, got %d", got)
		}
	})

	t.Run("gateway failure leaves mirror unchanged", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)
		f.txRepo.createErr = errors.New("connection refused")

		_, err := f.manager.SaveTransaction(context.Background(), &entity.Transaction{
			Amount:        decimal.NewFromInt(10),
			Date:          time.Now().UTC(),
			Category:      "Lazer",
			Type:          entity.TransactionTypeExpense,
			PaymentMethod: entity.PaymentMethodPix,
			Recurrence:    entity.RecurrenceNone,
		})
		if err == nil {
			t.Fatal("expected an error")
		}
		if got := len(f.manager.Snapshot().Transactions); got != 0 {
			t.Errorf("expected empty mirror after failed create, got %d", got)
		}
	})
}

func TestManagerDeleteTransaction(t *testing.T) {
	t.Run("removes from gateway and mirror", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		stored, err := f.manager.SaveTransaction(context.Background(), &entity.Transaction{
			Amount:        decimal.NewFromInt(10),
			Date:          time.Now().UTC(),
			Category:      "Lazer",
			Type:          entity.TransactionTypeExpense,
			PaymentMethod: entity.PaymentMethodPix,
			Recurrence:    entity.RecurrenceNone,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := f.manager.DeleteTransaction(context.Background(), stored.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len(f.manager.Snapshot().Transactions); got != 0 {
			t.Errorf("expected empty mirror, got %d", got)
		}
	})

	t.Run("gateway failure keeps the mirror entry", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		stored, err := f.manager.SaveTransaction(context.Background(), &entity.Transaction{
			Amount:        decimal.NewFromInt(10),
			Date:          time.Now().UTC(),
			Category:      "Lazer",
			Type:          entity.TransactionTypeExpense,
			PaymentMethod: entity.PaymentMethodPix,
			Recurrence:    entity.RecurrenceNone,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f.txRepo.deleteErr = errors.New("connection refused")
		if err := f.manager.DeleteTransaction(context.Background(), stored.ID); err == nil {
			t.Fatal("expected an error")
		}
		if got := len(f.manager.Snapshot().Transactions); got != 1 {
			t.Errorf("expected mirror untouched, got %d entries", got)
		}
	})
}

func TestManagerGoals(t *testing.T) {
	targetDate := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)

	t.Run("save keeps goals sorted by target date", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		if _, err := f.manager.SaveGoal(context.Background(), &entity.Goal{
			Name:         "Viagem de Férias",
			TargetAmount: decimal.NewFromInt(5000),
			TargetDate:   targetDate,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := f.manager.SaveGoal(context.Background(), &entity.Goal{
			Name:         "Novo Celular",
			TargetAmount: decimal.NewFromInt(3000),
			TargetDate:   time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		goals := f.manager.Snapshot().Goals
		if len(goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(goals))
		}
		if goals[0].Name != "Novo Celular" {
			t.Errorf("expected earliest target date first, got %s", goals[0].Name)
		}
	})

	t.Run("add progress updates the mirror", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		stored, err := f.manager.SaveGoal(context.Background(), &entity.Goal{
			Name:          "Viagem de Férias",
			TargetAmount:  decimal.NewFromInt(5000),
			CurrentAmount: decimal.NewFromInt(1250),
			TargetDate:    targetDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := f.manager.AddProgressToGoal(context.Background(), stored.ID, decimal.NewFromInt(500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.CurrentAmount.Equal(decimal.NewFromInt(1750)) {
			t.Errorf("expected current amount 1750, got %s", updated.CurrentAmount)
		}

		goals := f.manager.Snapshot().Goals
		if !goals[0].CurrentAmount.Equal(decimal.NewFromInt(1750)) {
			t.Errorf("expected mirror current amount 1750, got %s", goals[0].CurrentAmount)
		}
	})

	t.Run("delete removes from mirror", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		stored, err := f.manager.SaveGoal(context.Background(), &entity.Goal{
			Name:         "Viagem de Férias",
			TargetAmount: decimal.NewFromInt(5000),
			TargetDate:   targetDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := f.manager.DeleteGoal(context.Background(), stored.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len(f.manager.Snapshot().Goals); got != 0 {
			t.Errorf("expected no goals, got %d", got)
		}
	})
}

func TestManagerSetCurrency(t *testing.T) {
	t.Run("updates user preference", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		if err := f.manager.SetCurrency(context.Background(), entity.CurrencyEUR); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := f.manager.Snapshot().Currency; got != entity.CurrencyEUR {
			t.Errorf("expected EUR, got %s", got)
		}
	})

	t.Run("invalid currency is rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		if err := f.manager.SetCurrency(context.Background(), entity.Currency("GBP")); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("gateway failure leaves session currency unchanged", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)
		f.users.updateErr = errors.New("connection refused")

		if err := f.manager.SetCurrency(context.Background(), entity.CurrencyUSD); err == nil {
			t.Fatal("expected an error")
		}
		if got := f.manager.Snapshot().Currency; got != entity.CurrencyBRL {
			t.Errorf("expected BRL, got %s", got)
		}
	})
}

func TestManagerUpdateProfile(t *testing.T) {
	t.Run("updates name and email", func(t *testing.T) {
		f := newSessionFixture(t)
		f.login(t)

		if err := f.manager.UpdateProfile(context.Background(), "Novo Nome", "Novo@Email.com", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := f.manager.Snapshot()
		if snap.User.Name != "Novo Nome" {
			t.Errorf("expected name updated, got %s", snap.User.Name)
		}
		if snap.User.Email != "novo@email.com" {
			t.Errorf("expected email lowercased, got %s", snap.User.Email)
		}
	})

	t.Run("taken email is rejected", func(t *testing.T) {
		f := newSessionFixture(t)
		other := entity.NewUser("outro@email.com", "Outra Pessoa", "hashed:x")
		if err := f.users.Create(context.Background(), other); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
		f.login(t)

		err := f.manager.UpdateProfile(context.Background(), "Nome", "outro@email.com", nil)
		if err == nil {
			t.Fatal("expected an error")
		}

		var userErr *domainerror.UserError
		if !errors.As(err, &userErr) {
			t.Fatalf("expected UserError, got %T", err)
		}
		if userErr.Code != domainerror.ErrCodeEmailInUse {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmailInUse, userErr.Code)
		}
	})

	t.Run("nil avatar keeps stored avatar", func(t *testing.T) {
		f := newSessionFixture(t)
		avatar := "https://example.com/avatar.png"
		f.user.AvatarURL = &avatar
		f.login(t)

		if err := f.manager.UpdateProfile(context.Background(), "Nome", "teste@email.com", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := f.manager.Snapshot()
		if snap.User.AvatarURL == nil || *snap.User.AvatarURL != avatar {
			t.Error("expected avatar preserved")
		}
	})
}
