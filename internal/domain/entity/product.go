package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de muebles. Para el libro de
// stock es un registro pasivo referenciado por ID: nombre, precio y slug solo
// se usan para mostrar. El stock por bodega vive en StockRecord.
type Product struct {
	ID          string
	SKU         string // código único de producto
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
