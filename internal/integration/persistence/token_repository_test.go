package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRepository_RefreshTokens(t *testing.T) {
	db := openTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("saved token is valid", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "refresh-1", userID, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "refresh-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Error("expected token to be valid")
		}
	})

	t.Run("unknown token is invalid", func(t *testing.T) {
		valid, err := repo.IsRefreshTokenValid(ctx, "never-saved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected unknown token to be invalid")
		}
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "refresh-expired", userID, time.Now().Add(-time.Minute)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "refresh-expired")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected expired token to be invalid")
		}
	})

	t.Run("invalidation revokes the token", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "refresh-2", userID, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.InvalidateRefreshToken(ctx, "refresh-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "refresh-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected invalidated token to be invalid")
		}
	})

	t.Run("invalidate all revokes every token of the user", func(t *testing.T) {
		otherUser := uuid.New()
		if err := repo.SaveRefreshToken(ctx, "mine-a", userID, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.SaveRefreshToken(ctx, "mine-b", userID, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.SaveRefreshToken(ctx, "theirs", otherUser, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.InvalidateAllUserRefreshTokens(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, token := range []string{"mine-a", "mine-b"} {
			valid, err := repo.IsRefreshTokenValid(ctx, token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if valid {
				t.Errorf("expected %s to be invalid", token)
			}
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "theirs")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Error("expected other user's token to stay valid")
		}
	})
}

func TestTokenRepository_PasswordResetTokens(t *testing.T) {
	db := openTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("saved token round-trips", func(t *testing.T) {
		if err := repo.SavePasswordResetToken(ctx, "reset-1", userID, "teste@email.com", time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.GetPasswordResetToken(ctx, "reset-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored == nil {
			t.Fatal("expected stored token")
		}
		if stored.UserID != userID || stored.Email != "teste@email.com" {
			t.Errorf("unexpected token record: %+v", stored)
		}
		if stored.Used {
			t.Error("expected token not used")
		}
	})

	t.Run("unknown token returns nil without error", func(t *testing.T) {
		stored, err := repo.GetPasswordResetToken(ctx, "never-saved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored != nil {
			t.Errorf("expected nil, got %+v", stored)
		}
	})

	t.Run("invalidation marks the token used", func(t *testing.T) {
		if err := repo.SavePasswordResetToken(ctx, "reset-2", userID, "teste@email.com", time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := repo.InvalidatePasswordResetToken(ctx, "reset-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := repo.GetPasswordResetToken(ctx, "reset-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored == nil {
			t.Fatal("expected stored token")
		}
		if !stored.Used || stored.UsedAt == nil {
			t.Error("expected token marked used with a timestamp")
		}
	})
}
