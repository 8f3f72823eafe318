package repository

import "github.com/jhoicas/muebleria-stock/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para el directorio de
// bodegas (DIP). El libro de stock solo lee; el CRUD es administración.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
}
