package entity

import "time"

// Tipos de ajuste de stock.
const (
	AdjustmentTypeAdd    = "add"    // suma unidades
	AdjustmentTypeRemove = "remove" // resta unidades; rechaza si deja negativo
	AdjustmentTypeSet    = "set"    // fija la cantidad (conteo físico)
)

// Categorías de razón para un ajuste. Toda entrada del historial debe ser
// explicable, así que la razón es obligatoria y de conjunto cerrado; el texto
// libre va en Notes.
const (
	ReasonRestock    = "restock"
	ReasonSale       = "sale"
	ReasonReturn     = "return"
	ReasonDamaged    = "damaged"
	ReasonRecount    = "recount"
	ReasonCorrection = "correction"
	ReasonOther      = "other"
)

// ValidReason indica si la razón pertenece al conjunto cerrado.
func ValidReason(reason string) bool {
	switch reason {
	case ReasonRestock, ReasonSale, ReasonReturn, ReasonDamaged,
		ReasonRecount, ReasonCorrection, ReasonOther:
		return true
	}
	return false
}

// AdjustmentRecord es una entrada del historial de ajustes: inmutable una vez
// escrita, creada en la misma transacción que la mutación del StockRecord que
// describe. Invariante: NewQuantity - PreviousQuantity == Delta().
type AdjustmentRecord struct {
	ID               string
	WarehouseID      string
	ProductID        string
	Type             string
	Quantity         int64 // operando entregado por el caller, interpretado según Type
	PreviousQuantity int64
	NewQuantity      int64
	Reason           string
	Notes            string
	Actor            string
	Seq              int64 // secuencia de inserción; desempata CreatedAt iguales
	CreatedAt        time.Time
}

// Delta devuelve el cambio con signo que el ajuste implica sobre la cantidad.
func (a *AdjustmentRecord) Delta() int64 {
	switch a.Type {
	case AdjustmentTypeAdd:
		return a.Quantity
	case AdjustmentTypeRemove:
		return -a.Quantity
	case AdjustmentTypeSet:
		return a.NewQuantity - a.PreviousQuantity
	}
	return 0
}
