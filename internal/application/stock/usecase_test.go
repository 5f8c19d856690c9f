package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stocktrack-api/internal/application/stock"
	"github.com/tu-usuario/stocktrack-api/internal/domain"
	"github.com/tu-usuario/stocktrack-api/internal/domain/entity"
	"github.com/tu-usuario/stocktrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// GetForUpdate en el fake equivale a GetByID: los tests son secuenciales.
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) IncrementStock(id string, delta int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	p.Stock += delta
	cp := *p
	return &cp, nil
}

type fakeHistoryRepo struct {
	entries map[string]*entity.StockHistory
	order   []string
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{entries: make(map[string]*entity.StockHistory)}
}

func (r *fakeHistoryRepo) Create(e *entity.StockHistory) error {
	cp := *e
	r.entries[e.ID] = &cp
	r.order = append(r.order, e.ID)
	return nil
}

func (r *fakeHistoryRepo) GetByID(id string) (*entity.StockHistory, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeHistoryRepo) List(limit, offset int) ([]*entity.StockHistory, error) {
	out := make([]*entity.StockHistory, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.entries[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeHistoryRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockHistory, error) {
	out := make([]*entity.StockHistory, 0)
	for _, id := range r.order {
		if r.entries[id].ProductID == productID {
			cp := *r.entries[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeHistoryRepo) Update(e *entity.StockHistory) error {
	cur, ok := r.entries[e.ID]
	if !ok {
		return domain.ErrEntryNotFound
	}
	cur.Change = e.Change
	cur.Reason = e.Reason
	cur.UpdatedAt = e.UpdatedAt
	return nil
}

func (r *fakeHistoryRepo) Delete(id string) error {
	delete(r.entries, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeTxRunner ejecuta fn directamente contra los fakes: los fakes mutan en
// memoria, así que la "transacción" es el propio estado compartido.
type fakeTxRunner struct {
	historyRepo repository.StockHistoryRepository
	productRepo repository.ProductRepository
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	historyRepo repository.StockHistoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(tr.historyRepo, tr.productRepo)
}

// buildEngine arma el motor de ajustes con fakes y un producto inicial.
func buildEngine(t *testing.T, initialStock int64) (*stock.AdjustmentUseCase, *fakeProductRepo, *fakeHistoryRepo, string) {
	t.Helper()
	productRepo := newFakeProductRepo()
	historyRepo := newFakeHistoryRepo()

	const productID = "00000000-0000-0000-0000-0000000000aa"
	require.NoError(t, productRepo.Create(&entity.Product{
		ID:    productID,
		Name:  "Camiseta básica",
		Stock: initialStock,
	}))

	uc := stock.NewAdjustmentUseCase(
		&fakeTxRunner{historyRepo: historyRepo, productRepo: productRepo},
		historyRepo,
		productRepo,
	)
	return uc, productRepo, historyRepo, productID
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordChange
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordChange_EntradaPositiva(t *testing.T) {
	uc, productRepo, historyRepo, productID := buildEngine(t, 10)

	entry, updated, err := uc.RecordChange(context.Background(), productID, 5, entity.ReasonRestock)
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.NotNil(t, updated)

	assert.NotEmpty(t, entry.ID, "el registro debe recibir un ID generado")
	assert.Equal(t, productID, entry.ProductID)
	assert.Equal(t, int64(5), entry.Change)
	assert.Equal(t, entity.ReasonRestock, entry.Reason)
	assert.Equal(t, int64(15), updated.Stock, "stock debe reflejar el delta aplicado")

	// El registro queda persistido y el producto actualizado.
	persisted, err := historyRepo.GetByID(entry.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, int64(15), p.Stock)
}

func TestRecordChange_SalidaNegativa(t *testing.T) {
	uc, _, _, productID := buildEngine(t, 10)

	entry, updated, err := uc.RecordChange(context.Background(), productID, -4, entity.ReasonSale)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), entry.Change)
	assert.Equal(t, int64(6), updated.Stock)
}

func TestRecordChange_ChangeCero_Rechazado(t *testing.T) {
	uc, _, historyRepo, productID := buildEngine(t, 10)

	_, _, err := uc.RecordChange(context.Background(), productID, 0, entity.ReasonCorrection)
	assert.ErrorIs(t, err, domain.ErrInvalidChange)

	entries, _ := historyRepo.List(50, 0)
	assert.Empty(t, entries, "no debe escribirse ningún registro")
}

func TestRecordChange_MotivoInvalido_Rechazado(t *testing.T) {
	uc, productRepo, _, productID := buildEngine(t, 10)

	_, _, err := uc.RecordChange(context.Background(), productID, 3, "donacion")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, int64(10), p.Stock, "el stock no debe tocarse")
}

func TestRecordChange_StockInsuficiente(t *testing.T) {
	uc, productRepo, historyRepo, productID := buildEngine(t, 3)

	_, _, err := uc.RecordChange(context.Background(), productID, -4, entity.ReasonSale)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada se escribe: ni registro ni stock.
	entries, _ := historyRepo.List(50, 0)
	assert.Empty(t, entries)
	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, int64(3), p.Stock)
}

// Límite exacto: vaciar el stock a 0 es válido; un delta más allá no.
func TestRecordChange_LimiteExacto(t *testing.T) {
	uc, productRepo, _, productID := buildEngine(t, 5)

	_, updated, err := uc.RecordChange(context.Background(), productID, -5, entity.ReasonSale)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Stock, "llegar exactamente a 0 es válido")

	_, _, err = uc.RecordChange(context.Background(), productID, -1, entity.ReasonSale)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, int64(0), p.Stock)
}

func TestRecordChange_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := buildEngine(t, 10)

	_, _, err := uc.RecordChange(context.Background(), "no-existe", 5, entity.ReasonRestock)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ReviseChange
// ──────────────────────────────────────────────────────────────────────────────

func TestReviseChange_AplicaDiferencia(t *testing.T) {
	uc, _, _, productID := buildEngine(t, 50)

	// Venta de 5 unidades: 50 → 45.
	entry, updated, err := uc.RecordChange(context.Background(), productID, -5, entity.ReasonSale)
	require.NoError(t, err)
	require.Equal(t, int64(45), updated.Stock)

	// Corrección: en realidad fueron 8. Delta = -8 - (-5) = -3 → 42.
	revised, updated, err := uc.ReviseChange(context.Background(), entry.ID, -8, entity.ReasonSale)
	require.NoError(t, err)
	assert.Equal(t, int64(-8), revised.Change)
	assert.Equal(t, int64(42), updated.Stock,
		"el stock debe ajustarse por la diferencia contra el valor anterior, no por el valor nuevo completo")
}

func TestReviseChange_SoloMotivo_DeltaCero(t *testing.T) {
	uc, _, _, productID := buildEngine(t, 20)

	entry, _, err := uc.RecordChange(context.Background(), productID, -3, entity.ReasonOther)
	require.NoError(t, err)

	// Mismo change, solo cambia el motivo: delta 0, stock intacto.
	revised, updated, err := uc.ReviseChange(context.Background(), entry.ID, -3, entity.ReasonSale)
	require.NoError(t, err)
	assert.Equal(t, entity.ReasonSale, revised.Reason)
	assert.Equal(t, int64(17), updated.Stock)
}

// Corregir a 0 está permitido: anula el efecto del registro sin borrarlo.
func TestReviseChange_ACero_Permitido(t *testing.T) {
	uc, _, historyRepo, productID := buildEngine(t, 10)

	entry, _, err := uc.RecordChange(context.Background(), productID, -4, entity.ReasonSale)
	require.NoError(t, err)

	revised, updated, err := uc.ReviseChange(context.Background(), entry.ID, 0, entity.ReasonCorrection)
	require.NoError(t, err)
	assert.Equal(t, int64(0), revised.Change)
	assert.Equal(t, int64(10), updated.Stock, "corregir a 0 restaura el stock original")

	persisted, _ := historyRepo.GetByID(entry.ID)
	require.NotNil(t, persisted, "el registro sigue existiendo")
	assert.Equal(t, int64(0), persisted.Change)
}

func TestReviseChange_StockInsuficiente(t *testing.T) {
	uc, productRepo, historyRepo, productID := buildEngine(t, 10)

	entry, _, err := uc.RecordChange(context.Background(), productID, -5, entity.ReasonSale)
	require.NoError(t, err)

	// Corregir a -20 dejaría el stock en -10: rechazado sin efectos parciales.
	_, _, err = uc.ReviseChange(context.Background(), entry.ID, -20, entity.ReasonSale)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	persisted, _ := historyRepo.GetByID(entry.ID)
	assert.Equal(t, int64(-5), persisted.Change, "el registro conserva su valor anterior")
	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, int64(5), p.Stock)
}

func TestReviseChange_MotivoInvalido(t *testing.T) {
	uc, _, _, productID := buildEngine(t, 10)

	entry, _, err := uc.RecordChange(context.Background(), productID, 2, entity.ReasonRestock)
	require.NoError(t, err)

	_, _, err = uc.ReviseChange(context.Background(), entry.ID, 2, "ajuste-magico")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReviseChange_RegistroInexistente(t *testing.T) {
	uc, _, _, _ := buildEngine(t, 10)

	_, _, err := uc.ReviseChange(context.Background(), "no-existe", 5, entity.ReasonRestock)
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveChange
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveChange_RevierteEntradaNegativa(t *testing.T) {
	uc, productRepo, historyRepo, productID := buildEngine(t, 10)

	entry, _, err := uc.RecordChange(context.Background(), productID, -4, entity.ReasonSale)
	require.NoError(t, err)

	require.NoError(t, uc.RemoveChange(context.Background(), entry.ID))

	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, int64(10), p.Stock, "revertir una salida devuelve el stock original")
	gone, _ := historyRepo.GetByID(entry.ID)
	assert.Nil(t, gone, "el registro debe eliminarse del libro")
}

func TestRemoveChange_RevierteEntradaPositiva(t *testing.T) {
	uc, productRepo, _, productID := buildEngine(t, 10)

	entry, _, err := uc.RecordChange(context.Background(), productID, 6, entity.ReasonRestock)
	require.NoError(t, err)

	require.NoError(t, uc.RemoveChange(context.Background(), entry.ID))

	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, int64(10), p.Stock)
}

// Revertir una entrada positiva ya consumida dejaría el stock negativo.
func TestRemoveChange_StockYaConsumido(t *testing.T) {
	uc, productRepo, historyRepo, productID := buildEngine(t, 0)

	// Entra mercadería (+10) y luego se vende casi toda (-8). Stock = 2.
	restock, _, err := uc.RecordChange(context.Background(), productID, 10, entity.ReasonRestock)
	require.NoError(t, err)
	_, _, err = uc.RecordChange(context.Background(), productID, -8, entity.ReasonSale)
	require.NoError(t, err)

	// Revertir el restock pediría 2 - 10 = -8: rechazado.
	err = uc.RemoveChange(context.Background(), restock.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El registro y el stock quedan intactos.
	persisted, _ := historyRepo.GetByID(restock.ID)
	require.NotNil(t, persisted)
	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, int64(2), p.Stock)
}

func TestRemoveChange_RegistroInexistente(t *testing.T) {
	uc, _, _, _ := buildEngine(t, 10)

	err := uc.RemoveChange(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetEntry_YList(t *testing.T) {
	uc, productRepo, _, productID := buildEngine(t, 100)

	// Segundo producto para verificar el filtro de List.
	const otherID = "00000000-0000-0000-0000-0000000000bb"
	require.NoError(t, productRepo.Create(&entity.Product{ID: otherID, Name: "Pantalón", Stock: 100}))

	e1, _, err := uc.RecordChange(context.Background(), productID, 5, entity.ReasonRestock)
	require.NoError(t, err)
	_, _, err = uc.RecordChange(context.Background(), otherID, -2, entity.ReasonSale)
	require.NoError(t, err)

	got, err := uc.GetEntry(e1.ID)
	require.NoError(t, err)
	assert.Equal(t, e1.ID, got.ID)

	_, err = uc.GetEntry("no-existe")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)

	all, err := uc.List("", 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := uc.List(productID, 50, 0)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, e1.ID, filtered[0].ID)
}

// La suma de los cambios del libro siempre coincide con el stock acumulado
// a partir del inicial, pase lo que pase con registros corregidos o revertidos.
func TestLedger_SumaConsistenteConStock(t *testing.T) {
	uc, productRepo, historyRepo, productID := buildEngine(t, 30)

	e1, _, err := uc.RecordChange(context.Background(), productID, 10, entity.ReasonRestock)
	require.NoError(t, err)
	e2, _, err := uc.RecordChange(context.Background(), productID, -7, entity.ReasonSale)
	require.NoError(t, err)
	_, _, err = uc.ReviseChange(context.Background(), e2.ID, -12, entity.ReasonSale)
	require.NoError(t, err)
	require.NoError(t, uc.RemoveChange(context.Background(), e1.ID))

	entries, err := historyRepo.ListByProduct(productID, 100, 0)
	require.NoError(t, err)

	var sum int64
	for _, e := range entries {
		sum += e.Change
	}
	p, _ := productRepo.GetByID(productID)
	assert.Equal(t, int64(30)+sum, p.Stock,
		"stock = inicial + suma de los cambios vigentes del libro")
}
