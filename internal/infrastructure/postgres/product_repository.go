package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/apikit/internal/domain/entity"
	"github.com/jhoicas/apikit/internal/domain/repository"
	"github.com/jhoicas/apikit/pkg/pagination"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Columnas por las que se permite ordenar listados de productos.
var productSortColumns = []string{"sku", "name", "price", "created_at"}

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Un SKU duplicado sale como violación de
// constraint único envuelta, que la capa HTTP clasifica como BadRequest.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Description,
		product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Fila inexistente sale como pgx.ErrNoRows
// envuelto (la capa HTTP lo clasifica como NotFound).
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, price, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &p, nil
}

// Update actualiza nombre, descripción y precio de un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update product %s: %w", product.ID, pgx.ErrNoRows)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("delete product %s: %w", id, pgx.ErrNoRows)
	}
	return nil
}

// List devuelve la página solicitada y el total de productos. El sort del
// Pageable se aplica solo si la columna está en la lista blanca.
func (r *ProductRepo) List(ctx context.Context, page pagination.Pageable) ([]entity.Product, int64, error) {
	order := page.OrderBy(productSortColumns...)
	if order == "" {
		order = "created_at desc"
	}
	query := fmt.Sprintf(`
		SELECT id, sku, name, description, price, created_at, updated_at
		FROM products ORDER BY %s LIMIT $1 OFFSET $2`, order)

	rows, err := r.q.Query(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return products, total, nil
}
