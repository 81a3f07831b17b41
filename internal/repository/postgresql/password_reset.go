package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gastrodesk/backoffice-api/internal/domain/auth"
	"github.com/gastrodesk/backoffice-api/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type passwordResetRepositoryImpl struct {
	db *database.DB
}

func NewPasswordResetRepository(db *database.DB) auth.PasswordResetRepository {
	return &passwordResetRepositoryImpl{db: db}
}

// Create implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) Create(ctx context.Context, userID, tokenHash string, ttlMinutes int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO password_resets (token_hash, user_id, expires_at)
		VALUES ($1, $2, NOW() + make_interval(mins => $3))
	`
	if _, err := q.Exec(ctx, query, tokenHash, userID, ttlMinutes); err != nil {
		return fmt.Errorf("create password reset: %w", err)
	}
	return nil
}

// Consume implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) Consume(ctx context.Context, tokenHash string) (auth.PasswordReset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE password_resets
		SET used_at = NOW()
		WHERE token_hash = $1 AND used_at IS NULL AND expires_at > NOW()
		RETURNING token_hash, user_id
	`

	var reset auth.PasswordReset
	err := q.QueryRow(ctx, query, tokenHash).Scan(&reset.TokenHash, &reset.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.PasswordReset{}, auth.ErrResetTokenInvalid
		}
		return auth.PasswordReset{}, fmt.Errorf("consume password reset: %w", err)
	}
	return reset, nil
}

// DeleteExpired implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM password_resets WHERE used_at IS NOT NULL OR expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired password resets: %w", err)
	}
	return tag.RowsAffected(), nil
}
