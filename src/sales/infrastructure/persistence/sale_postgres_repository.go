package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"supermercado/src/sales/domain/entity"
	"supermercado/src/sales/domain/port"

	"github.com/google/uuid"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL.
// La venta y sus items se escriben y se borran dentro de una misma
// transacción: o queda el aggregate completo o no queda nada.
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// Save persiste el aggregate. Primero intenta el UPDATE de los campos propios
// de la venta; si no existe, inserta la venta con todos sus items. Los items
// nunca se modifican en un update.
func (r *SalePostgresRepository) Save(ctx context.Context, sale *entity.Sale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	queryUpdate := `
		UPDATE sales
		SET sale_date = $1, status = $2, branch_id = $3, total = $4
		WHERE id = $5
	`

	result, err := tx.ExecContext(ctx, queryUpdate,
		sale.Date,
		sale.Status,
		sale.BranchID,
		sale.Total,
		sale.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating sale: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		if err := insertSale(ctx, tx, sale); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func insertSale(ctx context.Context, tx *sql.Tx, sale *entity.Sale) error {
	// 1. Insertar la venta (aggregate root)
	querySale := `
		INSERT INTO sales (
			id, sale_date, status, branch_id, total, created_at
		) VALUES (
			$1, $2, $3, $4, $5, NOW()
		)
	`

	_, err := tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.Date,
		sale.Status,
		sale.BranchID,
		sale.Total,
	)
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}

	// 2. Insertar los items (entities dentro del aggregate). La posición
	// preserva el orden del request al recargar la venta.
	queryItem := `
		INSERT INTO sale_items (
			id, sale_id, product_id, product_name,
			quantity, unit_price, subtotal, position, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW()
		)
	`

	for i, item := range sale.Items {
		_, err := tx.ExecContext(ctx, queryItem,
			item.ID,
			sale.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
			i,
		)
		if err != nil {
			return fmt.Errorf("error creating sale item for product %s: %w", item.ProductName, err)
		}
	}

	return nil
}

// FindByID carga la venta con sus items
func (r *SalePostgresRepository) FindByID(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	querySale := `
		SELECT id, sale_date, status, branch_id, total
		FROM sales
		WHERE id = $1
	`

	sale := &entity.Sale{}
	err := r.db.QueryRowContext(ctx, querySale, saleID).Scan(
		&sale.ID,
		&sale.Date,
		&sale.Status,
		&sale.BranchID,
		&sale.Total,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding sale: %w", err)
	}

	items, err := r.loadItems(ctx, sale.ID)
	if err != nil {
		return nil, err
	}
	sale.Items = items

	return sale, nil
}

// FindByBranch retorna las ventas de una sucursal con sus items
func (r *SalePostgresRepository) FindByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Sale, error) {
	query := `
		SELECT id, sale_date, status, branch_id, total
		FROM sales
		WHERE branch_id = $1
		ORDER BY created_at DESC
	`
	return r.querySales(ctx, query, branchID)
}

// FindAll retorna todas las ventas con sus items
func (r *SalePostgresRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, sale_date, status, branch_id, total
		FROM sales
		ORDER BY created_at DESC
	`
	return r.querySales(ctx, query)
}

// Delete elimina la venta y sus items en una sola transacción
func (r *SalePostgresRepository) Delete(ctx context.Context, saleID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// Primero los items (no pueden quedar huérfanos), después la venta
	if _, err := tx.ExecContext(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("error deleting sale items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("error deleting sale: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrSaleNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func (r *SalePostgresRepository) querySales(ctx context.Context, query string, args ...interface{}) ([]*entity.Sale, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale := &entity.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.Date,
			&sale.Status,
			&sale.BranchID,
			&sale.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	// Cargar los items de cada venta (consulta N+1, suficiente a esta escala)
	for _, sale := range sales {
		items, err := r.loadItems(ctx, sale.ID)
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}

	return sales, nil
}

func (r *SalePostgresRepository) loadItems(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	queryItems := `
		SELECT id, product_id, product_name, quantity, unit_price, subtotal
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, queryItems, saleID)
	if err != nil {
		return nil, fmt.Errorf("error querying sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		item := entity.SaleItem{}
		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale items: %w", err)
	}

	return items, nil
}
