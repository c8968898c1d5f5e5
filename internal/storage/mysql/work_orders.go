package mysql

import (
	"context"
	"fmt"

	"mes-analytics/internal/storage"
)

// GetActiveWorkOrders — срез всех незакрытых заказов для аналитики потока.
// created_at отдаём строкой, разбором даты занимается движок.
func (s *Storage) GetActiveWorkOrders(ctx context.Context) ([]*storage.WorkOrderSnapshot, error) {
	const op = "storage.mysql.GetActiveWorkOrders"

	query := `SELECT wo.id, wo.order_num, wo.customer, wo.item_code, wo.quantity,
		wo.due_date, wo.created_at, wo.material_qc_passed, wo.first_piece_qc_passed,
		wo.external_status, wo.progress_pct
		FROM work_orders wo
		WHERE wo.status = 'active'
		ORDER BY wo.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: ошибка получения активных заказов: %w", op, err)
	}
	defer rows.Close()

	var orders []*storage.WorkOrderSnapshot
	for rows.Next() {
		var wo storage.WorkOrderSnapshot

		err := rows.Scan(
			&wo.ID,
			&wo.OrderNum,
			&wo.Customer,
			&wo.ItemCode,
			&wo.Quantity,
			&wo.DueDate,
			&wo.CreatedAt,
			&wo.MaterialQcPassed,
			&wo.FirstPieceQcPassed,
			&wo.ExternalStatus,
			&wo.ProgressPct,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: ошибка сканирования строки заказа: %w", op, err)
		}

		orders = append(orders, &wo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}
