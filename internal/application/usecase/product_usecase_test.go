package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktrack-api/internal/application/dto"
	"github.com/tu-usuario/stocktrack-api/internal/application/usecase"
	"github.com/tu-usuario/stocktrack-api/internal/domain"
	"github.com/tu-usuario/stocktrack-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[string]*entity.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*entity.Product)}
}

func (r *stubProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *stubProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) IncrementStock(id string, delta int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	p.Stock += delta
	cp := *p
	return &cp, nil
}

type stubCategoryRepo struct {
	categories map[string]*entity.Category
	inUse      map[string]int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{
		categories: make(map[string]*entity.Category),
		inUse:      make(map[string]int64),
	}
}

func (r *stubCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) CountProducts(id string) (int64, error) {
	return r.inUse[id], nil
}

const testCategoryID = "00000000-0000-0000-0000-0000000000c1"

func buildProductUC(t *testing.T) (*usecase.ProductUseCase, *stubProductRepo, *stubCategoryRepo) {
	t.Helper()
	productRepo := newStubProductRepo()
	categoryRepo := newStubCategoryRepo()
	require.NoError(t, categoryRepo.Create(&entity.Category{
		ID:          testCategoryID,
		Name:        "Ropa",
		Description: "Prendas de vestir",
	}))
	return usecase.NewProductUseCase(productRepo, categoryRepo), productRepo, categoryRepo
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_OK(t *testing.T) {
	uc, _, _ := buildProductUC(t)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:        "Camiseta básica",
		Description: "Algodón 100%",
		Price:       decimal.NewFromFloat(19.90),
		Color:       "blanco",
		CategoryID:  testCategoryID,
		Stock:       25,
		Supplier:    "Textiles SA",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(25), out.Stock)
	assert.Equal(t, "Ropa", out.CategoryName)
}

func TestProductCreate_CamposRequeridos(t *testing.T) {
	uc, _, _ := buildProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{Name: "Camiseta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_StockNegativo(t *testing.T) {
	uc, _, _ := buildProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:        "Camiseta",
		Description: "Algodón",
		Price:       decimal.NewFromInt(10),
		Color:       "azul",
		CategoryID:  testCategoryID,
		Stock:       -1,
		Supplier:    "Textiles SA",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _ := buildProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:        "Camiseta",
		Description: "Algodón",
		Price:       decimal.NewFromInt(10),
		Color:       "azul",
		CategoryID:  "no-existe",
		Stock:       5,
		Supplier:    "Textiles SA",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestProductUpdate_ParcheParcial(t *testing.T) {
	uc, productRepo, _ := buildProductUC(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:        "Camiseta",
		Description: "Algodón",
		Price:       decimal.NewFromInt(10),
		Color:       "azul",
		CategoryID:  testCategoryID,
		Stock:       5,
		Supplier:    "Textiles SA",
	})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Name:  strPtr("Camiseta premium"),
		Color: strPtr("negro"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Camiseta premium", out.Name)
	assert.Equal(t, "negro", out.Color)
	// Los campos no enviados quedan intactos, incluido el stock.
	assert.Equal(t, "Algodón", out.Description)
	assert.Equal(t, int64(5), out.Stock)

	p, _ := productRepo.GetByID(created.ID)
	assert.Equal(t, int64(5), p.Stock)
}

func TestProductUpdate_NombreVacio(t *testing.T) {
	uc, _, _ := buildProductUC(t)

	created, err := uc.Create(dto.CreateProductRequest{
		Name:        "Camiseta",
		Description: "Algodón",
		Price:       decimal.NewFromInt(10),
		Color:       "azul",
		CategoryID:  testCategoryID,
		Stock:       5,
		Supplier:    "Textiles SA",
	})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Name: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetYDelete_NoEncontrado(t *testing.T) {
	uc, _, _ := buildProductUC(t)

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	err = uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CategoryUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_EnUso(t *testing.T) {
	categoryRepo := newStubCategoryRepo()
	require.NoError(t, categoryRepo.Create(&entity.Category{
		ID:          testCategoryID,
		Name:        "Ropa",
		Description: "Prendas",
	}))
	categoryRepo.inUse[testCategoryID] = 3

	uc := usecase.NewCategoryUseCase(categoryRepo)
	err := uc.Delete(testCategoryID)
	assert.ErrorIs(t, err, domain.ErrCategoryInUse)

	// Sin productos asociados sí se puede borrar.
	categoryRepo.inUse[testCategoryID] = 0
	require.NoError(t, uc.Delete(testCategoryID))
	_, err = uc.GetByID(testCategoryID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryCreate_Validacion(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newStubCategoryRepo())

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Ropa"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Ropa", Description: "Prendas"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
}
