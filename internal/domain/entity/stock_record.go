package entity

import "time"

// StockRecord representa el stock actual de un producto en una bodega.
// Identidad: (WarehouseID, ProductID). Se crea implícitamente en el primer
// ajuste (estado cero) y nunca se borra: una fila con cantidad cero distingue
// "stock cero conocido" de "nunca almacenado aquí".
// Version es el contador para control de concurrencia optimista; se incrementa
// en cada escritura de cantidad.
type StockRecord struct {
	WarehouseID      string
	ProductID        string
	StockQuantity    int64 // unidades físicamente presentes, nunca negativo
	ReservedQuantity int64 // unidades apartadas sin despachar, nunca negativo
	ReorderLevel     int64 // umbral de reorden; 0 = sin alerta
	Version          int64
	UpdatedAt        time.Time
}

// Available devuelve stock - reservado. Puede ser negativo: una reserva por
// encima del stock es un bug del flujo de reservas (externo) y debe verse,
// no ocultarse con un clamp.
func (s *StockRecord) Available() int64 {
	return s.StockQuantity - s.ReservedQuantity
}

// IsLowStock indica si el registro está por debajo de su umbral de reorden.
// Umbral cero desactiva la alerta.
func (s *StockRecord) IsLowStock() bool {
	return s.ReorderLevel > 0 && s.StockQuantity < s.ReorderLevel
}
