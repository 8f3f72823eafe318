package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/muebleria-stock/internal/application/inventory"
	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para los casos de uso de inventario. Imitan la semántica
// del esquema real: GetForUpdate crea la fila en estado cero si no existe,
// Save incrementa version, y el historial asigna seq creciente al insertar.
// ──────────────────────────────────────────────────────────────────────────────

func pairKey(warehouseID, productID string) string {
	return warehouseID + "|" + productID
}

// fakeStockRepo implementación en memoria de StockRecordRepository.
type fakeStockRepo struct {
	mu      sync.Mutex
	records map[string]*entity.StockRecord
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{records: make(map[string]*entity.StockRecord)}
}

func (f *fakeStockRepo) Get(warehouseID, productID string) (*entity.StockRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if rec, ok := f.records[pairKey(warehouseID, productID)]; ok {
		cp := *rec
		return &cp, nil
	}
	return &entity.StockRecord{WarehouseID: warehouseID, ProductID: productID}, nil
}

func (f *fakeStockRepo) GetForUpdate(warehouseID, productID string) (*entity.StockRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey(warehouseID, productID)
	if _, ok := f.records[key]; !ok {
		f.records[key] = &entity.StockRecord{
			WarehouseID: warehouseID,
			ProductID:   productID,
			UpdatedAt:   time.Now(),
		}
	}
	cp := *f.records[key]
	return &cp, nil
}

func (f *fakeStockRepo) Save(record *entity.StockRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey(record.WarehouseID, record.ProductID)
	stored, ok := f.records[key]
	if !ok {
		stored = &entity.StockRecord{WarehouseID: record.WarehouseID, ProductID: record.ProductID}
		f.records[key] = stored
	}
	stored.StockQuantity = record.StockQuantity
	stored.UpdatedAt = record.UpdatedAt
	stored.Version++
	record.Version = stored.Version
	return nil
}

func (f *fakeStockRepo) ListByProduct(productID string) ([]*entity.StockRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.StockRecord
	for _, rec := range f.records {
		if rec.ProductID == productID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WarehouseID < out[j].WarehouseID })
	return out, nil
}

func (f *fakeStockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.StockRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.StockRecord
	for _, rec := range f.records {
		if rec.WarehouseID == warehouseID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (f *fakeStockRepo) SetReorderLevel(warehouseID, productID string, level int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey(warehouseID, productID)
	if _, ok := f.records[key]; !ok {
		f.records[key] = &entity.StockRecord{WarehouseID: warehouseID, ProductID: productID}
	}
	f.records[key].ReorderLevel = level
	return nil
}

func (f *fakeStockRepo) SetReserved(warehouseID, productID string, reserved int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := pairKey(warehouseID, productID)
	if _, ok := f.records[key]; !ok {
		f.records[key] = &entity.StockRecord{WarehouseID: warehouseID, ProductID: productID}
	}
	f.records[key].ReservedQuantity = reserved
	return nil
}

func (f *fakeStockRepo) ListBelowReorderLevel(warehouseID string) ([]repository.LowStockItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.LowStockItem
	for _, rec := range f.records {
		if warehouseID != "" && rec.WarehouseID != warehouseID {
			continue
		}
		if rec.ReorderLevel > 0 && rec.StockQuantity < rec.ReorderLevel {
			out = append(out, repository.LowStockItem{
				WarehouseID:   rec.WarehouseID,
				ProductID:     rec.ProductID,
				StockQuantity: rec.StockQuantity,
				ReorderLevel:  rec.ReorderLevel,
				Deficit:       rec.ReorderLevel - rec.StockQuantity,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Deficit > out[j].Deficit })
	return out, nil
}

// seed fija directamente un registro, saltándose el motor de ajustes.
func (f *fakeStockRepo) seed(rec entity.StockRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := rec
	f.records[pairKey(rec.WarehouseID, rec.ProductID)] = &cp
}

// fakeAdjustmentRepo implementación en memoria de AdjustmentRepository.
// Solo agrega: no hay forma de modificar ni borrar entradas.
type fakeAdjustmentRepo struct {
	mu      sync.Mutex
	entries []*entity.AdjustmentRecord
	nextSeq int64
}

func newFakeAdjustmentRepo() *fakeAdjustmentRepo {
	return &fakeAdjustmentRepo{}
}

func (f *fakeAdjustmentRepo) Create(record *entity.AdjustmentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextSeq++
	record.Seq = f.nextSeq
	cp := *record
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeAdjustmentRepo) GetByID(id string) (*entity.AdjustmentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.entries {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAdjustmentRepo) List(filter repository.AdjustmentFilter) ([]*entity.AdjustmentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.AdjustmentRecord
	for _, e := range f.entries {
		if filter.WarehouseID != "" && e.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.ProductID != "" && e.ProductID != filter.ProductID {
			continue
		}
		if filter.From != nil && e.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.CreatedAt.After(*filter.To) {
			continue
		}
		cp := *e
		matched = append(matched, &cp)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].Seq > matched[j].Seq
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (f *fakeAdjustmentRepo) ListAscending(warehouseID, productID string) ([]*entity.AdjustmentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*entity.AdjustmentRecord
	for _, e := range f.entries {
		if e.WarehouseID == warehouseID && e.ProductID == productID {
			cp := *e
			matched = append(matched, &cp)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].Seq < matched[j].Seq
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

func (f *fakeAdjustmentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// fakeWarehouseRepo implementación en memoria de WarehouseRepository.
type fakeWarehouseRepo struct {
	mu         sync.Mutex
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(warehouses ...*entity.Warehouse) *fakeWarehouseRepo {
	f := &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
	for _, w := range warehouses {
		f.warehouses[w.ID] = w
	}
	return f
}

func (f *fakeWarehouseRepo) Create(warehouse *entity.Warehouse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warehouses[warehouse.ID] = warehouse
	return nil
}

func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.warehouses[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeWarehouseRepo) Update(warehouse *entity.Warehouse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warehouses[warehouse.ID] = warehouse
	return nil
}

func (f *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		cp := *w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// fakeTxRunner serializa las transacciones con un mutex, igual que lo hace el
// SELECT FOR UPDATE por fila en PostgreSQL (aquí con granularidad global, que
// es suficiente para los tests).
type fakeTxRunner struct {
	mu        sync.Mutex
	stockRepo *fakeStockRepo
	adjRepo   *fakeAdjustmentRepo
}

func newFakeTxRunner(stockRepo *fakeStockRepo, adjRepo *fakeAdjustmentRepo) *fakeTxRunner {
	return &fakeTxRunner{stockRepo: stockRepo, adjRepo: adjRepo}
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRecordRepository,
	adjRepo repository.AdjustmentRepository,
) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.stockRepo, f.adjRepo)
}
