package repository

import (
	"context"
	"fmt"

	"github.com/piresc/easybank/internal/pkg/models"
)

const tokenColumns = `id, access_token, refresh_token, customer_id, administrator_id,
	revoked, expired, issued_at, expires_at`

// SaveToken stores a newly issued token pair
func (r *BankingRepo) SaveToken(ctx context.Context, token *models.AuthToken) error {
	query := `
		INSERT INTO auth_tokens (
			id, access_token, refresh_token, customer_id, administrator_id, revoked, expired, issued_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.q.ExecContext(ctx, query,
		token.ID,
		token.AccessToken,
		token.RefreshToken,
		token.CustomerID,
		token.AdministratorID,
		token.Revoked,
		token.Expired,
		token.IssuedAt,
		token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// FindValidTokens returns the owner's tokens that are neither revoked nor expired
func (r *BankingRepo) FindValidTokens(ctx context.Context, owner models.PrincipalRef) ([]*models.AuthToken, error) {
	query := `SELECT ` + tokenColumns + ` FROM auth_tokens
		WHERE ` + ownerColumn(owner.Kind) + ` = $1 AND revoked = FALSE AND expired = FALSE
		ORDER BY issued_at DESC`

	var tokens []*models.AuthToken
	if err := r.q.SelectContext(ctx, &tokens, query, owner.ID); err != nil {
		return nil, fmt.Errorf("failed to get valid tokens: %w", err)
	}
	return tokens, nil
}

// FindTokenByAccess retrieves the record of an access token
func (r *BankingRepo) FindTokenByAccess(ctx context.Context, accessToken string) (*models.AuthToken, error) {
	var token models.AuthToken
	query := `SELECT ` + tokenColumns + ` FROM auth_tokens WHERE access_token = $1`
	found, err := r.get(ctx, &token, query, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &token, nil
}

// RevokeAllTokens flags every valid token of the owner as revoked and expired
func (r *BankingRepo) RevokeAllTokens(ctx context.Context, owner models.PrincipalRef) (int64, error) {
	query := `UPDATE auth_tokens SET revoked = TRUE, expired = TRUE
		WHERE ` + ownerColumn(owner.Kind) + ` = $1 AND (revoked = FALSE OR expired = FALSE)`

	result, err := r.q.ExecContext(ctx, query, owner.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke tokens: %w", err)
	}
	revoked, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count revoked tokens: %w", err)
	}
	return revoked, nil
}
