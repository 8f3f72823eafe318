package repository

import "github.com/jhoicas/muebleria-stock/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo (DIP).
// El libro de stock trata el ProductID como clave foránea opaca; este puerto
// existe para el CRUD del catálogo y para mostrar nombres en respuestas.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
}
