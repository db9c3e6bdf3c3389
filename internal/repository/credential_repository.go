package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-workflow/internal/domain"
)

// PostgresCredentialRepository implements CredentialRepository using PostgreSQL.
type PostgresCredentialRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCredentialRepository creates a new PostgresCredentialRepository.
func NewPostgresCredentialRepository(pool *pgxpool.Pool) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{pool: pool}
}

// GetCredential retrieves the stored tokens for a provider.
func (r *PostgresCredentialRepository) GetCredential(ctx context.Context, provider string) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.pool.QueryRow(ctx, `
		SELECT provider, access_token, refresh_token, expires_at, updated_at
		FROM platform_credentials
		WHERE provider = $1
	`, provider).Scan(&cred.Provider, &cred.AccessToken, &cred.RefreshToken, &cred.ExpiresAt, &cred.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credential: %w", err)
	}
	return &cred, nil
}

// SaveCredential upserts the tokens for a provider.
func (r *PostgresCredentialRepository) SaveCredential(ctx context.Context, cred *domain.Credential) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO platform_credentials (provider, access_token, refresh_token, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider) DO UPDATE
		SET access_token = EXCLUDED.access_token,
			refresh_token = CASE WHEN EXCLUDED.refresh_token = '' THEN platform_credentials.refresh_token
				ELSE EXCLUDED.refresh_token END,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at
	`, cred.Provider, cred.AccessToken, cred.RefreshToken, cred.ExpiresAt, cred.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}
