package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/muebleria-stock/internal/application/dto"
	"github.com/jhoicas/muebleria-stock/internal/application/usecase"
	"github.com/jhoicas/muebleria-stock/internal/domain"
	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
)

// memProductRepo doble en memoria de ProductRepository con unicidad de SKU y
// slug, como la impone la base real.
type memProductRepo struct {
	products []*entity.Product
}

func (m *memProductRepo) Create(product *entity.Product) error {
	for _, p := range m.products {
		if p.SKU == product.SKU || p.Slug == product.Slug {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	m.products = append(m.products, &cp)
	return nil
}

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) Update(product *entity.Product) error {
	for i, p := range m.products {
		if p.ID == product.ID {
			cp := *product
			m.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func TestProductCreate_GeneraSlugDesdeElNombre(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	resp, err := uc.Create(dto.CreateProductRequest{
		SKU:   "SOF-001",
		Name:  "Sofá Módulo Esquinero",
		Price: decimal.NewFromInt(12500),
	})
	require.NoError(t, err)

	assert.Equal(t, "sofa-modulo-esquinero", resp.Slug)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(12500)))
}

func TestProductCreate_RespetaSlugExplicito(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	resp, err := uc.Create(dto.CreateProductRequest{
		SKU:  "MES-002",
		Name: "Mesa de Centro",
		Slug: "mesa-centro-promo",
	})
	require.NoError(t, err)
	assert.Equal(t, "mesa-centro-promo", resp.Slug)
}

func TestProductCreate_SKURepetidoEsDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	_, err := uc.Create(dto.CreateProductRequest{SKU: "SOF-001", Name: "Sofá Uno"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "SOF-001", Name: "Sofá Dos"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestProductCreate_ValidaCamposRequeridos(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	_, err := uc.Create(dto.CreateProductRequest{Name: "Sin SKU"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.Create(dto.CreateProductRequest{SKU: "X-1"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestProductUpdate_RegeneraSlugAlCambiarNombre(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	created, err := uc.Create(dto.CreateProductRequest{SKU: "CAM-003", Name: "Cama King"})
	require.NoError(t, err)

	nuevoNombre := "Cama Queen Ortopédica"
	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, "cama-queen-ortopedica", updated.Slug)
	assert.Equal(t, nuevoNombre, updated.Name)
}

func TestProductUpdate_IDDesconocidoDevuelveNil(t *testing.T) {
	uc := usecase.NewProductUseCase(&memProductRepo{})

	nombre := "Lo que sea"
	resp, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, resp, "producto inexistente se reporta como nil para mapear a 404")
}
