package entity

// WarehouseStock es un StockRecord anotado con los metadatos de su bodega,
// tal como lo consume la página de producto y el panel de administración.
type WarehouseStock struct {
	Record        StockRecord
	WarehouseName string
	State         string
	IsAvailable   bool
	LowStock      bool
}

// ProductAggregate es la vista derivada del stock de un producto sumando todas
// sus bodegas. Nunca se persiste: se calcula en cada lectura, así que siempre
// es consistente con los StockRecords subyacentes.
// TotalAvailable puede ser negativo; un total negativo delata un bug del flujo
// de reservas y debe ser visible.
type ProductAggregate struct {
	ProductID      string
	Records        []WarehouseStock
	TotalStock     int64
	TotalReserved  int64
	TotalAvailable int64
}

// NewProductAggregate construye el agregado sumando los registros por bodega.
func NewProductAggregate(productID string, records []WarehouseStock) *ProductAggregate {
	agg := &ProductAggregate{ProductID: productID, Records: records}
	for _, r := range records {
		agg.TotalStock += r.Record.StockQuantity
		agg.TotalReserved += r.Record.ReservedQuantity
	}
	agg.TotalAvailable = agg.TotalStock - agg.TotalReserved
	return agg
}
