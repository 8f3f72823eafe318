package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	State       string `json:"state"`
	Capacity    int64  `json:"capacity" validate:"min=0"`
	IsAvailable *bool  `json:"is_available"` // nil = true
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	State       *string `json:"state"`
	Capacity    *int64  `json:"capacity" validate:"omitempty,min=0"`
	IsAvailable *bool   `json:"is_available"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Capacity    int64     `json:"capacity"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
