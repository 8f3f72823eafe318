package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/muebleria-stock/internal/application/dto"
	"github.com/jhoicas/muebleria-stock/internal/application/usecase"
	"github.com/jhoicas/muebleria-stock/internal/domain"
	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
)

// memWarehouseRepo doble en memoria de WarehouseRepository.
type memWarehouseRepo struct {
	warehouses []*entity.Warehouse
}

func (m *memWarehouseRepo) Create(warehouse *entity.Warehouse) error {
	cp := *warehouse
	m.warehouses = append(m.warehouses, &cp)
	return nil
}

func (m *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	for _, w := range m.warehouses {
		if w.ID == id {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memWarehouseRepo) Update(warehouse *entity.Warehouse) error {
	for i, w := range m.warehouses {
		if w.ID == warehouse.ID {
			cp := *warehouse
			m.warehouses[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(m.warehouses))
	for _, w := range m.warehouses {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

func TestWarehouseCreate_DisponiblePorDefecto(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})

	resp, err := uc.Create(dto.CreateWarehouseRequest{
		Name:     "Bodega Central",
		State:    "Jalisco",
		Capacity: 5000,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsAvailable, "sin bandera explícita la bodega nace disponible")
	assert.Equal(t, int64(5000), resp.Capacity)
	assert.NotEmpty(t, resp.ID)
}

func TestWarehouseCreate_ValidaNombreYCapacidad(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})

	_, err := uc.Create(dto.CreateWarehouseRequest{Name: "  "})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Create(dto.CreateWarehouseRequest{Name: "Bodega", Capacity: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestWarehouseUpdate_CambiaDisponibilidad(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})

	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Bodega Norte"})
	require.NoError(t, err)

	off := false
	updated, err := uc.Update(created.ID, dto.UpdateWarehouseRequest{IsAvailable: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
}

func TestWarehouseUpdate_CapacidadNegativaRechaza(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})

	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Bodega Sur"})
	require.NoError(t, err)

	neg := int64(-10)
	_, err = uc.Update(created.ID, dto.UpdateWarehouseRequest{Capacity: &neg})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
