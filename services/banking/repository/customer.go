package repository

import (
	"context"
	"fmt"

	"github.com/piresc/easybank/internal/pkg/models"
	"github.com/piresc/easybank/services/banking"
)

const customerColumns = `id, first_name, last_name, email, phone_number, password_hash, pin_hash,
	is_enabled, is_suspended, created_at, updated_at`

const customerEmailKey = "customers_email_key"

// ExistsByEmail reports whether a customer already uses email
func (r *BankingRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)`
	if err := r.q.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// CountCustomers returns the number of registered customers
func (r *BankingRepo) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.GetContext(ctx, &count, `SELECT COUNT(*) FROM customers`); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

// CreateCustomer inserts a customer and fills its generated fields
func (r *BankingRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (
			first_name, last_name, email, phone_number, password_hash, pin_hash, is_enabled, is_suspended
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.q.QueryRowxContext(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.PhoneNumber,
		customer.PasswordHash,
		customer.PinHash,
		customer.IsEnabled,
		customer.IsSuspended,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		if constraint, ok := violatedConstraint(err); ok && constraint == customerEmailKey {
			return banking.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// FindCustomerByEmail retrieves a customer by email
func (r *BankingRepo) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	found, err := r.get(ctx, &customer, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &customer, nil
}

// FindCustomerByID retrieves a customer by ID
func (r *BankingRepo) FindCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	found, err := r.get(ctx, &customer, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &customer, nil
}

// UpdateCustomer writes the profile fields and password hash of customer
func (r *BankingRepo) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4, password_hash = $5, updated_at = NOW()
		WHERE id = $6
	`
	_, err := r.q.ExecContext(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.PhoneNumber,
		customer.PasswordHash,
		customer.ID,
	)
	if err != nil {
		if constraint, ok := violatedConstraint(err); ok && constraint == customerEmailKey {
			return banking.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

// EnableCustomer marks the customer's email as verified
func (r *BankingRepo) EnableCustomer(ctx context.Context, id int64) error {
	query := `UPDATE customers SET is_enabled = TRUE, updated_at = NOW() WHERE id = $1`
	if _, err := r.q.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to enable customer: %w", err)
	}
	return nil
}

// FindAdministratorByEmail retrieves an administrator by email
func (r *BankingRepo) FindAdministratorByEmail(ctx context.Context, email string) (*models.Administrator, error) {
	var admin models.Administrator
	query := `
		SELECT id, first_name, last_name, email, phone_number, password_hash,
			is_enabled, is_suspended, created_at, updated_at
		FROM administrators WHERE email = $1
	`
	found, err := r.get(ctx, &admin, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get administrator by email: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &admin, nil
}
