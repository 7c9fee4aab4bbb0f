// Package session implements the client-facing session and data context:
// the authenticated user plus in-memory mirrors of the user's transactions
// and goals, kept in sync with the persistence gateway by write-through
// mutations. The mirror is only ever updated after a gateway call succeeds,
// so a failed mutation leaves it untouched.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
	"github.com/financas-pro/backend/internal/domain/metrics"
)

// State is the lifecycle state of the session.
type State string

const (
	StateLoggedOut State = "logged_out"
	StateLoading   State = "loading"
	StateReady     State = "ready"
)

// ErrNotReady is returned when a mutation is attempted before the session
// reached the ready state.
var ErrNotReady = errors.New("session is not ready")

// defaultOpTimeout bounds every gateway call made by the manager.
const defaultOpTimeout = 10 * time.Second

// Snapshot is the read model the UI consumes.
type Snapshot struct {
	User         *entity.User
	Transactions []*entity.Transaction
	Goals        []*entity.Goal
	Currency     entity.Currency
	State        State
}

// Manager owns the session state machine and the data mirrors. All methods
// are safe for concurrent use; mutations serialize on an internal lock.
type Manager struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
	goalRepo        adapter.GoalRepository
	passwordService adapter.PasswordService
	opTimeout       time.Duration

	mu           sync.Mutex
	state        State
	user         *entity.User
	transactions []*entity.Transaction
	goals        []*entity.Goal
}

// NewManager creates a session manager in the logged-out state.
func NewManager(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.GoalRepository,
	passwordService adapter.PasswordService,
) *Manager {
	return &Manager{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		passwordService: passwordService,
		opTimeout:       defaultOpTimeout,
		state:           StateLoggedOut,
	}
}

// Login authenticates the user and loads the data mirrors. On any load
// failure the session returns to the logged-out state and the error
// surfaces; it never sticks in loading.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	opCtx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	user, err := m.userRepo.FindByEmail(opCtx, strings.ToLower(email))
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}
	if err := m.passwordService.VerifyPassword(user.PasswordHash, password); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	m.state = StateLoading
	m.user = user

	if err := m.load(ctx, user.ID); err != nil {
		m.reset()
		return fmt.Errorf("failed to load session data: %w", err)
	}

	m.state = StateReady
	return nil
}

// load fetches transactions and goals concurrently and installs them
// sorted. Caller holds the lock.
func (m *Manager) load(ctx context.Context, userID uuid.UUID) error {
	opCtx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	var (
		transactions []*entity.Transaction
		goals        []*entity.Goal
	)

	g, gctx := errgroup.WithContext(opCtx)
	g.Go(func() error {
		var err error
		transactions, err = m.transactionRepo.FindByUserID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = m.goalRepo.FindByUserID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	m.transactions = metrics.SortByDateDesc(transactions)
	m.goals = metrics.SortGoalsByTargetDate(goals)
	return nil
}

// Logout clears the mirrors and returns to the logged-out state. There is
// no server-side session to invalidate.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// reset clears all session state. Caller holds the lock.
func (m *Manager) reset() {
	m.state = StateLoggedOut
	m.user = nil
	m.transactions = nil
	m.goals = nil
}

// Snapshot returns a copy of the read model. The slices are fresh copies;
// callers may not mutate the entities they point to.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{State: m.state}
	if m.user != nil {
		userCopy := *m.user
		snap.User = &userCopy
		snap.Currency = m.user.Currency
	}
	snap.Transactions = append([]*entity.Transaction(nil), m.transactions...)
	snap.Goals = append([]*entity.Goal(nil), m.goals...)
	return snap
}

// SaveTransaction writes a transaction through to the gateway and then
// updates the mirror. A nil transaction ID means create; a non-nil ID means
// update.
func (m *Manager) SaveTransaction(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireReady(); err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	var (
		stored *entity.Transaction
		err    error
	)
	if tx.ID == uuid.Nil {
		created := entity.NewTransaction(
			m.user.ID, tx.Amount, tx.Date, tx.Category, tx.Description,
			tx.Type, tx.PaymentMethod, tx.Recurrence, tx.Tags,
		)
		stored, err = m.transactionRepo.Create(opCtx, created)
	} else {
		tx.UserID = m.user.ID
		stored, err = m.transactionRepo.Update(opCtx, tx)
	}
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, existing := range m.transactions {
		if existing.ID == stored.ID {
			m.transactions[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		m.transactions = append(m.transactions, stored)
	}
	m.transactions = metrics.SortByDateDesc(m.transactions)

	return stored, nil
}

// DeleteTransaction deletes a transaction at the gateway and then drops it
// from the mirror.
func (m *Manager) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireReady(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	if err := m.transactionRepo.Delete(opCtx, id); err != nil {
		return err
	}

	for i, tx := range m.transactions {
		if tx.ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			break
		}
	}
	return nil
}

// SaveGoal writes a goal through to the gateway and then updates the
// mirror. A nil goal ID means create; a non-nil ID means update.
func (m *Manager) SaveGoal(ctx context.Context, goal *entity.Goal) (*entity.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireReady(); err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	var (
		stored *entity.Goal
		err    error
	)
	if goal.ID == uuid.Nil {
		created := entity.NewGoal(m.user.ID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.TargetDate)
		stored, err = m.goalRepo.Create(opCtx, created)
	} else {
		goal.UserID = m.user.ID
		stored, err = m.goalRepo.Update(opCtx, goal)
	}
	if err != nil {
		return nil, err
	}

	m.installGoal(stored)
	return stored, nil
}

// DeleteGoal deletes a goal at the gateway and then drops it from the mirror.
func (m *Manager) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireReady(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	if err := m.goalRepo.Delete(opCtx, id); err != nil {
		return err
	}

	for i, goal := range m.goals {
		if goal.ID == id {
			m.goals = append(m.goals[:i], m.goals[i+1:]...)
			break
		}
	}
	return nil
}

// AddProgressToGoal contributes to a goal via the gateway's atomic
// increment and installs the returned stored record in the mirror.
func (m *Manager) AddProgressToGoal(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireReady(); err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	stored, err := m.goalRepo.AddProgress(opCtx, id, amount)
	if err != nil {
		return nil, err
	}

	m.installGoal(stored)
	return stored, nil
}

// SetCurrency updates the user's preferred currency through the gateway.
func (m *Manager) SetCurrency(ctx context.Context, currency entity.Currency) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireReady(); err != nil {
		return err
	}
	if !currency.IsValid() {
		return domainerror.NewUserError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be 'BRL', 'USD', or 'EUR'",
			domainerror.ErrInvalidCurrency,
		)
	}

	opCtx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	updated := *m.user
	updated.Currency = currency
	updated.UpdatedAt = time.Now().UTC()
	if err := m.userRepo.Update(opCtx, &updated); err != nil {
		return err
	}

	m.user = &updated
	return nil
}

// UpdateProfile updates name, email and optionally the avatar through the
// gateway. A nil avatarURL keeps the stored avatar.
func (m *Manager) UpdateProfile(ctx context.Context, name, email string, avatarURL *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireReady(); err != nil {
		return err
	}

	opCtx, cancel := context.WithTimeout(ctx, m.opTimeout)
	defer cancel()

	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized != m.user.Email {
		exists, err := m.userRepo.ExistsByEmail(opCtx, normalized)
		if err != nil {
			return err
		}
		if exists {
			return domainerror.NewUserError(
				domainerror.ErrCodeEmailInUse,
				"email already in use",
				domainerror.ErrEmailInUse,
			)
		}
	}

	updated := *m.user
	updated.Name = name
	updated.Email = normalized
	if avatarURL != nil {
		updated.AvatarURL = avatarURL
	}
	updated.UpdatedAt = time.Now().UTC()
	if err := m.userRepo.Update(opCtx, &updated); err != nil {
		return err
	}

	m.user = &updated
	return nil
}

// installGoal replaces or appends a goal in the mirror and re-sorts by
// target date. Caller holds the lock.
func (m *Manager) installGoal(stored *entity.Goal) {
	replaced := false
	for i, existing := range m.goals {
		if existing.ID == stored.ID {
			m.goals[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		m.goals = append(m.goals, stored)
	}
	m.goals = metrics.SortGoalsByTargetDate(m.goals)
}

// requireReady guards mutations. Caller holds the lock.
func (m *Manager) requireReady() error {
	if m.state != StateReady {
		return ErrNotReady
	}
	return nil
}
