package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"supermercado/src/catalog/domain/entity"
	"supermercado/src/catalog/domain/port"

	"github.com/google/uuid"
)

// BranchPostgresRepository implementa BranchRepository usando PostgreSQL
type BranchPostgresRepository struct {
	db *sql.DB
}

// NewBranchPostgresRepository crea una nueva instancia del repositorio
func NewBranchPostgresRepository(db *sql.DB) port.BranchRepository {
	return &BranchPostgresRepository{
		db: db,
	}
}

// Create inserta una sucursal
func (r *BranchPostgresRepository) Create(ctx context.Context, branch *entity.Branch) error {
	query := `
		INSERT INTO branches (
			id, name, address, created_at
		) VALUES (
			$1, $2, $3, NOW()
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		branch.ID,
		branch.Name,
		branch.Address,
	)
	if err != nil {
		return fmt.Errorf("error creating branch: %w", err)
	}

	return nil
}

// Update reemplaza nombre y dirección de la sucursal
func (r *BranchPostgresRepository) Update(ctx context.Context, branch *entity.Branch) error {
	query := `
		UPDATE branches
		SET name = $1, address = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query,
		branch.Name,
		branch.Address,
		branch.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating branch: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrBranchNotFound
	}

	return nil
}

// FindByID busca una sucursal por su ID
func (r *BranchPostgresRepository) FindByID(ctx context.Context, branchID uuid.UUID) (*entity.Branch, error) {
	query := `
		SELECT id, name, address
		FROM branches
		WHERE id = $1
	`

	branch := &entity.Branch{}
	err := r.db.QueryRowContext(ctx, query, branchID).Scan(
		&branch.ID,
		&branch.Name,
		&branch.Address,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrBranchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding branch: %w", err)
	}

	return branch, nil
}

// FindAll retorna todas las sucursales
func (r *BranchPostgresRepository) FindAll(ctx context.Context) ([]*entity.Branch, error) {
	query := `
		SELECT id, name, address
		FROM branches
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying branches: %w", err)
	}
	defer rows.Close()

	var branches []*entity.Branch
	for rows.Next() {
		branch := &entity.Branch{}
		err := rows.Scan(
			&branch.ID,
			&branch.Name,
			&branch.Address,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning branch: %w", err)
		}
		branches = append(branches, branch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branches: %w", err)
	}

	return branches, nil
}

// Delete elimina una sucursal
func (r *BranchPostgresRepository) Delete(ctx context.Context, branchID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM branches WHERE id = $1`, branchID)
	if err != nil {
		return fmt.Errorf("error deleting branch: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrBranchNotFound
	}

	return nil
}
