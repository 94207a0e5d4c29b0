package repository

import (
	"context"
	"errors"
	"fmt"

	"address-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the subset of *pgxpool.Pool used by the repository.
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Repository implements the address store on PostgreSQL
type Repository struct {
	db Database
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db Database) *Repository {
	return &Repository{db: db}
}

const createAddressTable = `
	CREATE TABLE IF NOT EXISTS address (
		id BIGSERIAL PRIMARY KEY,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		name TEXT NOT NULL,
		description TEXT
	)
`

// Migrate creates the address table if it does not exist yet
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createAddressTable); err != nil {
		return fmt.Errorf("repository: failed to create address table: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("repository: ping failed: %w", err)
	}
	return nil
}

// ListAddresses returns every stored address in a single read
func (r *Repository) ListAddresses(ctx context.Context) ([]models.Address, error) {
	sql := `
		SELECT id, latitude, longitude, name, description
		FROM address
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var addr models.Address
		err := rows.Scan(
			&addr.ID,
			&addr.Latitude,
			&addr.Longitude,
			&addr.Name,
			&addr.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan address: %w", err)
		}
		addresses = append(addresses, addr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return addresses, nil
}

// GetAddress returns the address with the given id or models.ErrNotFound
func (r *Repository) GetAddress(ctx context.Context, id int64) (*models.Address, error) {
	sql := `
		SELECT id, latitude, longitude, name, description
		FROM address
		WHERE id = $1
	`

	var addr models.Address
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&addr.ID,
		&addr.Latitude,
		&addr.Longitude,
		&addr.Name,
		&addr.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: address %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("repository: failed to get address: %w", err)
	}

	return &addr, nil
}

// CreateAddress inserts addr and sets its ID to the one assigned by the database
func (r *Repository) CreateAddress(ctx context.Context, addr *models.Address) error {
	sql := `
		INSERT INTO address (latitude, longitude, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql, addr.Latitude, addr.Longitude, addr.Name, addr.Description).Scan(&addr.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to insert address: %w", err)
	}

	return nil
}

// UpdateAddress overwrites every field of the stored address with the same id
func (r *Repository) UpdateAddress(ctx context.Context, addr models.Address) error {
	sql := `
		UPDATE address
		SET latitude = $1, longitude = $2, name = $3, description = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(ctx, sql, addr.Latitude, addr.Longitude, addr.Name, addr.Description, addr.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: address %d: %w", addr.ID, models.ErrNotFound)
	}

	return nil
}

// DeleteAddress removes the address with the given id
func (r *Repository) DeleteAddress(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM address WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: address %d: %w", id, models.ErrNotFound)
	}

	return nil
}
