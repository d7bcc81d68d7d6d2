package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/services/banking"
)

const uniqueViolation = "23505"

// querier is the subset of sqlx shared by *sqlx.DB and *sqlx.Tx
type querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

// BankingRepo implements banking.BankingRepo over PostgreSQL
type BankingRepo struct {
	db *sqlx.DB
	q  querier
	tx bool
}

// NewBankingRepo creates a new banking repository
func NewBankingRepo(db *sqlx.DB) *BankingRepo {
	return &BankingRepo{db: db, q: db}
}

// Transact runs fn inside a transaction. Nested calls join the outer one.
func (r *BankingRepo) Transact(ctx context.Context, fn banking.TxFunc) error {
	if r.tx {
		return fn(ctx, r)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, &BankingRepo{db: r.db, q: tx, tx: true}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// get runs a single row query, mapping no rows to found=false
func (r *BankingRepo) get(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	if err := r.q.GetContext(ctx, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// violatedConstraint returns the constraint name of a unique violation
func violatedConstraint(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// ownerColumn returns the auth_tokens column referencing the principal kind
func ownerColumn(kind models.PrincipalKind) string {
	if kind == models.PrincipalAdministrator {
		return "administrator_id"
	}
	return "customer_id"
}
