package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/muebleria-stock/internal/domain/entity"
	"github.com/jhoicas/muebleria-stock/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación append-only del historial de ajustes sobre
// PostgreSQL (usable con pool o tx). No existen UPDATE ni DELETE: las filas
// son inmutables una vez escritas.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

const adjustmentColumns = `id, warehouse_id, product_id, type, quantity, previous_quantity, new_quantity, reason, notes, actor, seq, created_at`

// Create persiste una entrada del historial. seq lo asigna la secuencia de la
// tabla y desempata created_at iguales al reconstruir el orden.
func (r *AdjustmentRepo) Create(record *entity.AdjustmentRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_adjustments (id, warehouse_id, product_id, type, quantity, previous_quantity, new_quantity, reason, notes, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING seq`
	actor := (*string)(nil)
	if record.Actor != "" {
		actor = &record.Actor
	}
	err := r.q.QueryRow(context.Background(), query,
		record.ID, record.WarehouseID, record.ProductID, record.Type,
		record.Quantity, record.PreviousQuantity, record.NewQuantity,
		record.Reason, record.Notes, actor, record.CreatedAt,
	).Scan(&record.Seq)
	if err != nil {
		return fmt.Errorf("create adjustment: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *AdjustmentRepo) GetByID(id string) (*entity.AdjustmentRecord, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM stock_adjustments WHERE id = $1`
	rec, err := scanAdjustment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment: %w", err)
	}
	return rec, nil
}

// List devuelve ajustes filtrados, del más reciente al más antiguo.
func (r *AdjustmentRepo) List(filter repository.AdjustmentFilter) ([]*entity.AdjustmentRecord, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM stock_adjustments WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, seq DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	return scanAdjustments(rows)
}

// ListAscending devuelve todos los ajustes de un par en orden de creación,
// para reproducir el estado actual desde cero.
func (r *AdjustmentRepo) ListAscending(warehouseID, productID string) ([]*entity.AdjustmentRecord, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM stock_adjustments
		WHERE warehouse_id = $1 AND product_id = $2
		ORDER BY created_at ASC, seq ASC`
	rows, err := r.q.Query(context.Background(), query, warehouseID, productID)
	if err != nil {
		return nil, fmt.Errorf("list adjustments ascending: %w", err)
	}
	defer rows.Close()
	return scanAdjustments(rows)
}

func scanAdjustment(row pgx.Row) (*entity.AdjustmentRecord, error) {
	var a entity.AdjustmentRecord
	var actor *string
	err := row.Scan(
		&a.ID, &a.WarehouseID, &a.ProductID, &a.Type, &a.Quantity,
		&a.PreviousQuantity, &a.NewQuantity, &a.Reason, &a.Notes, &actor,
		&a.Seq, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if actor != nil {
		a.Actor = *actor
	}
	return &a, nil
}

func scanAdjustments(rows pgx.Rows) ([]*entity.AdjustmentRecord, error) {
	var list []*entity.AdjustmentRecord
	for rows.Next() {
		rec, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
