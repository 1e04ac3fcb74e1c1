package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"supermercado/src/catalog/domain/entity"
	"supermercado/src/catalog/domain/port"
	domainCriteria "supermercado/src/shared/domain/criteria"
	infraCriteria "supermercado/src/shared/infrastructure/criteria"

	"github.com/google/uuid"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db        *sql.DB
	converter *infraCriteria.SQLCriteriaConverter
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db:        db,
		converter: infraCriteria.NewSQLCriteriaConverter(),
	}
}

// Create inserta un producto. El índice único sobre name hace cumplir la
// unicidad del nombre en el catálogo.
func (r *ProductPostgresRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, name, category, price, stock, created_at
		) VALUES (
			$1, $2, $3, $4, $5, NOW()
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.Stock,
	)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}

	return nil
}

// Update reemplaza los atributos mutables del producto
func (r *ProductPostgresRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $1, category = $2, price = $3, stock = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		product.Name,
		product.Category,
		product.Price,
		product.Stock,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// FindByID busca un producto por su ID
func (r *ProductPostgresRepository) FindByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, name, category, price, stock
		FROM products
		WHERE id = $1
	`
	return r.scanProduct(r.db.QueryRowContext(ctx, query, productID))
}

// FindByName resuelve un producto por nombre exacto
func (r *ProductPostgresRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `
		SELECT id, name, category, price, stock
		FROM products
		WHERE name = $1
	`
	return r.scanProduct(r.db.QueryRowContext(ctx, query, name))
}

// FindAll retorna todos los productos
func (r *ProductPostgresRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, category, price, stock
		FROM products
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// SearchByCriteria busca productos según los criterios especificados
func (r *ProductPostgresRepository) SearchByCriteria(ctx context.Context, crit domainCriteria.Criteria) ([]*entity.Product, error) {
	baseQuery := `SELECT id, name, category, price, stock FROM products`

	query, params := r.converter.ToSelectSQL(baseQuery, crit)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("error searching products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Delete elimina un producto
func (r *ProductPostgresRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

func (r *ProductPostgresRepository) scanProduct(row *sql.Row) (*entity.Product, error) {
	product := &entity.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Stock,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning product: %w", err)
	}
	return product, nil
}

func scanProducts(rows *sql.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		product := &entity.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Price,
			&product.Stock,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
