package entity

import "time"

// Warehouse representa una bodega física de la cadena (multi-bodega).
// El libro de stock la consulta solo para anotar advertencias de capacidad;
// la capacidad nunca bloquea un ajuste.
type Warehouse struct {
	ID          string
	Name        string
	State       string // estado o región donde opera la bodega
	Capacity    int64  // capacidad nominal en unidades; 0 = sin límite declarado
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
