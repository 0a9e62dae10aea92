package repository

import (
	"context"

	"github.com/jhoicas/apikit/internal/domain/entity"
	"github.com/jhoicas/apikit/pkg/pagination"
)

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// List devuelve la página solicitada y el total de filas.
	List(ctx context.Context, page pagination.Pageable) ([]entity.Product, int64, error)
}

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
